// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package colorscale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketLabel_Defaults(t *testing.T) {
	tests := []struct {
		count    float64
		expected string
	}{
		{-100, "0-1K"},
		{0, "0-1K"},
		{999, "0-1K"},
		{1000, "1K-5K"},
		{4999, "1K-5K"},
		{5000, "5K-25K"},
		{25000, "25K-100K"},
		{99999.9, "25K-100K"},
		{100000, "100K-500K"},
		{500000, "500K+"},
		{1e12, "500K+"},
		{math.Inf(1), "500K+"},
		{math.NaN(), "0-1K"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BucketLabel(tt.count, nil), "count %v", tt.count)
	}
}

func TestColorByBucket_Boundaries(t *testing.T) {
	assert.NotEqual(t, ColorByBucket(999, nil), ColorByBucket(1000, nil))
	assert.Equal(t, ColorByBucket(0, nil), ColorByBucket(-100, nil))
	assert.Equal(t, "#eff3ff", ColorByBucket(0, nil))
	assert.Equal(t, "#08519c", ColorByBucket(750000, nil))
}

func TestColorByBucket_CustomTable(t *testing.T) {
	buckets := Buckets{
		{Min: 10, Max: 20, Color: "#000001", Label: "low"},
		{Min: 20, Max: math.Inf(1), Color: "#000002", Label: "high"},
	}

	assert.Equal(t, "low", BucketLabel(0, buckets))
	assert.Equal(t, "low", BucketLabel(19.99, buckets))
	assert.Equal(t, "high", BucketLabel(20, buckets))
	assert.Equal(t, "#000002", ColorByBucket(1e9, buckets))
}

func TestFind_TablesWithoutAnOpenEnd(t *testing.T) {
	buckets := Buckets{
		{Min: 0, Max: 10, Color: "#000001", Label: "a"},
		{Min: 20, Max: 30, Color: "#000002", Label: "b"},
	}

	assert.Equal(t, "a", buckets.Find(15).Label, "gap resolves to the bucket below")
	assert.Equal(t, "b", buckets.Find(100).Label, "past the end resolves to the last bucket")
}

func TestDefaultBuckets_IsACopy(t *testing.T) {
	b := DefaultBuckets()
	b[0].Label = "changed"
	b[0].Color = "#ffffff"

	assert.Equal(t, "0-1K", BucketLabel(0, nil))
	assert.Equal(t, "0-1K", DefaultBuckets()[0].Label)
}

func TestDefaultBuckets_Valid(t *testing.T) {
	require.NoError(t, DefaultBuckets().Validate())
	assert.Len(t, DefaultBuckets(), 6)
}

func TestGenerateLegend(t *testing.T) {
	legend := GenerateLegend(nil)
	require.Len(t, legend, 6)

	labels := make([]string, len(legend))
	for i, entry := range legend {
		labels[i] = entry.Label
		assert.NotEmpty(t, entry.Color)
	}
	assert.Equal(t, []string{"0-1K", "1K-5K", "5K-25K", "25K-100K", "100K-500K", "500K+"}, labels)
}

func TestValidate(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name    string
		buckets Buckets
	}{
		{"empty", Buckets{}},
		{"gap", Buckets{
			{Min: 0, Max: 10, Color: "#000000"},
			{Min: 11, Max: inf, Color: "#000000"},
		}},
		{"overlap", Buckets{
			{Min: 0, Max: 10, Color: "#000000"},
			{Min: 5, Max: inf, Color: "#000000"},
		}},
		{"bounded last bucket", Buckets{
			{Min: 0, Max: 10, Color: "#000000"},
		}},
		{"unbounded middle bucket", Buckets{
			{Min: 0, Max: inf, Color: "#000000"},
			{Min: 10, Max: inf, Color: "#000000"},
		}},
		{"inverted range", Buckets{
			{Min: 10, Max: 0, Color: "#000000"},
		}},
		{"bad color", Buckets{
			{Min: 0, Max: inf, Color: "blue"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.buckets.Validate(), ErrInvalidBuckets)
		})
	}
}
