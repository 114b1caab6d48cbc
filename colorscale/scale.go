// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package colorscale

import (
	"math"
	"strings"
)

// Scale selects how counts are spread across the color range.
type Scale string

const (
	Linear Scale = "linear"
	Log    Scale = "log"
)

// ParseScale reads a scale name; anything but "log" is Linear.
func ParseScale(s string) Scale {
	if strings.EqualFold(strings.TrimSpace(s), string(Log)) {
		return Log
	}
	return Linear
}

// Default continuous domain, matching the start of the top default bucket.
const (
	DefaultScaleMin = 0
	DefaultScaleMax = 500_000
)

// ScaleConfig describes a continuous color scale. Zero fields take defaults:
// an unset domain (Min == Max == 0) is [DefaultScaleMin, DefaultScaleMax] and
// a nil Interpolate uses the DefaultScheme palette.
type ScaleConfig struct {
	Min         float64
	Max         float64
	Scale       Scale
	Interpolate func(t float64) string
}

// DefaultScaleConfig returns a linear blues scale over the default domain.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		Min:         DefaultScaleMin,
		Max:         DefaultScaleMax,
		Scale:       Linear,
		Interpolate: schemes[DefaultScheme].Interpolate,
	}
}

// ColorByScale interpolates a color for count within cfg's domain.
func ColorByScale(count float64, cfg ScaleConfig) string {
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Min, cfg.Max = DefaultScaleMin, DefaultScaleMax
	}
	if cfg.Interpolate == nil {
		cfg.Interpolate = schemes[DefaultScheme].Interpolate
	}
	return cfg.Interpolate(position(count, cfg))
}

// position maps count to t in [0, 1].
func position(count float64, cfg ScaleConfig) float64 {
	if math.IsNaN(count) || count <= cfg.Min {
		return 0
	}
	if count >= cfg.Max {
		return 1
	}

	span := cfg.Max - cfg.Min
	if span <= 0 || math.IsNaN(span) {
		return 0
	}

	if cfg.Scale == Log {
		return math.Log1p(count-cfg.Min) / math.Log1p(span)
	}
	return (count - cfg.Min) / span
}
