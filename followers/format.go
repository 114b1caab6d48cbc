// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package followers

import (
	"math"

	"github.com/dustin/go-humanize"
)

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatCompact renders a count with one decimal and a unit suffix, in the
// same shape Parse accepts: 2400000 -> "2.4M", 987000 -> "987K".
func FormatCompact(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		n = 0
	}

	for _, u := range compactUnits {
		if n >= u.size {
			return humanize.FtoaWithDigits(n/u.size, 1) + u.suffix
		}
	}
	return humanize.FtoaWithDigits(n, 1)
}

// FormatFull renders a count with thousands separators, rounded to a whole number.
func FormatFull(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		n = 0
	}
	return humanize.Comma(int64(math.Round(n)))
}
