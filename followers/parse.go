// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package followers

import (
	"math"
	"math/big"
	"regexp"
	"strings"
)

var (
	// 1000, 12,300, 1,234.5
	plainPattern = regexp.MustCompile(`^(?:\d+|\d{1,3}(?:,\d{3})+)(?:\.\d+)?$`)

	// 1K, 2.5k, 0.1M; commas are not allowed before a suffix
	suffixPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)([KkMmBbTt])$`)
)

var multipliers = map[byte]int64{
	'K': 1_000,
	'M': 1_000_000,
	'B': 1_000_000_000,
	'T': 1_000_000_000_000,
}

// Parse converts a follower count string to its numeric value.
// Returns 0 for any input outside the accepted grammar.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if m := suffixPattern.FindStringSubmatch(s); m != nil {
		unit := m[2][0]
		if unit >= 'a' {
			unit -= 'a' - 'A'
		}
		return scale(m[1], multipliers[unit])
	}

	if plainPattern.MatchString(s) {
		return scale(strings.ReplaceAll(s, ",", ""), 1)
	}

	return 0
}

// ParseValue parses loosely typed input. Strings, non-nil string pointers and
// byte slices go through Parse; everything else, numbers included, is 0.
func ParseValue(v any) float64 {
	switch val := v.(type) {
	case string:
		return Parse(val)
	case *string:
		if val == nil {
			return 0
		}
		return Parse(*val)
	case []byte:
		return Parse(string(val))
	default:
		return 0
	}
}

// scale multiplies a validated decimal literal exactly and rounds once.
func scale(literal string, multiplier int64) float64 {
	r, ok := new(big.Rat).SetString(literal)
	if !ok {
		return 0
	}
	r.Mul(r, new(big.Rat).SetInt64(multiplier))

	f, _ := r.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}
