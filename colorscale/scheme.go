// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package colorscale

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultScheme is used when no scheme is configured.
const DefaultScheme = "blues"

// Scheme is a named sequential palette. Its stops cannot be changed after
// construction.
type Scheme struct {
	name  string
	stops []colorful.Color
}

var schemes = map[string]Scheme{
	"blues":   mustScheme("blues", "#eff3ff", "#bdd7e7", "#6baed6", "#3182bd", "#08519c"),
	"greens":  mustScheme("greens", "#edf8e9", "#bae4b3", "#74c476", "#31a354", "#006d2c"),
	"purples": mustScheme("purples", "#f2f0f7", "#cbc9e2", "#9e9ac8", "#756bb1", "#54278f"),
	"oranges": mustScheme("oranges", "#feedde", "#fdbe85", "#fd8d3c", "#e6550d", "#a63603"),
	"viridis": mustScheme("viridis", "#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"),
}

func mustScheme(name string, hexes ...string) Scheme {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("colorscale: scheme " + name + ": " + err.Error())
		}
		stops[i] = c
	}
	return Scheme{name: name, stops: stops}
}

// SchemeByName looks up a palette.
func SchemeByName(name string) (Scheme, bool) {
	s, ok := schemes[name]
	return s, ok
}

// SchemeNames lists the available palettes, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s Scheme) Name() string {
	return s.name
}

// Interpolate returns the color at t in [0, 1]. Values outside are clamped;
// NaN is treated as 0. Stops are returned exactly at t = 0 and t = 1.
func (s Scheme) Interpolate(t float64) string {
	if len(s.stops) == 0 {
		s = schemes[DefaultScheme]
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	pos := t * float64(len(s.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(s.stops)-1 {
		return s.stops[len(s.stops)-1].Hex()
	}

	frac := pos - float64(i)
	if frac == 0 {
		return s.stops[i].Hex()
	}
	return s.stops[i].BlendLab(s.stops[i+1], frac).Clamped().Hex()
}
