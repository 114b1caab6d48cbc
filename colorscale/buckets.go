// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package colorscale

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/danielhkuo/reach-board/models"
)

var ErrInvalidBuckets = errors.New("invalid bucket table")

// Bucket is the half-open range [Min, Max) drawn with Color.
// The last bucket of a table has Max = +Inf.
type Bucket struct {
	Min   float64
	Max   float64
	Color string
	Label string
}

// Buckets is an ordered bucket table.
type Buckets []Bucket

var defaultBuckets = [...]Bucket{
	{Min: 0, Max: 1_000, Color: "#eff3ff", Label: "0-1K"},
	{Min: 1_000, Max: 5_000, Color: "#c6dbef", Label: "1K-5K"},
	{Min: 5_000, Max: 25_000, Color: "#9ecae1", Label: "5K-25K"},
	{Min: 25_000, Max: 100_000, Color: "#6baed6", Label: "25K-100K"},
	{Min: 100_000, Max: 500_000, Color: "#3182bd", Label: "100K-500K"},
	{Min: 500_000, Max: math.Inf(1), Color: "#08519c", Label: "500K+"},
}

// DefaultBuckets returns a copy of the default table.
func DefaultBuckets() Buckets {
	b := defaultBuckets
	return b[:]
}

// Find returns the bucket holding count. Counts below the table (and NaN)
// map to the first bucket; counts past a bounded last bucket map to the last.
// An empty table falls back to DefaultBuckets.
func (b Buckets) Find(count float64) Bucket {
	if len(b) == 0 {
		b = DefaultBuckets()
	}
	if math.IsNaN(count) || count < b[0].Min {
		return b[0]
	}

	for _, bucket := range b {
		if count >= bucket.Min && count < bucket.Max {
			return bucket
		}
	}

	// gaps or a bounded last bucket: the last bucket starting at or below count
	found := b[0]
	for _, bucket := range b {
		if bucket.Min <= count {
			found = bucket
		}
	}
	return found
}

// Legend lists color and label for every bucket, in table order.
func (b Buckets) Legend() []models.LegendEntry {
	if len(b) == 0 {
		b = DefaultBuckets()
	}
	legend := make([]models.LegendEntry, len(b))
	for i, bucket := range b {
		legend[i] = models.LegendEntry{Color: bucket.Color, Label: bucket.Label}
	}
	return legend
}

// Validate checks that the table is non-empty, contiguous, non-overlapping,
// unbounded at the top and uses hex colors.
func (b Buckets) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("%w: no buckets", ErrInvalidBuckets)
	}

	for i, bucket := range b {
		if math.IsNaN(bucket.Min) || math.IsInf(bucket.Min, 0) {
			return fmt.Errorf("%w: bucket %d has no finite min", ErrInvalidBuckets, i)
		}
		if bucket.Max <= bucket.Min {
			return fmt.Errorf("%w: bucket %d max %v is not above min %v", ErrInvalidBuckets, i, bucket.Max, bucket.Min)
		}
		if _, err := colorful.Hex(bucket.Color); err != nil {
			return fmt.Errorf("%w: bucket %d color %q: %v", ErrInvalidBuckets, i, bucket.Color, err)
		}

		last := i == len(b)-1
		if last && !math.IsInf(bucket.Max, 1) {
			return fmt.Errorf("%w: last bucket must be unbounded", ErrInvalidBuckets)
		}
		if !last && bucket.Max != b[i+1].Min {
			return fmt.Errorf("%w: bucket %d ends at %v but bucket %d starts at %v",
				ErrInvalidBuckets, i, bucket.Max, i+1, b[i+1].Min)
		}
	}

	return nil
}

// ColorByBucket returns the color of the bucket holding count.
// nil buckets means DefaultBuckets.
func ColorByBucket(count float64, buckets Buckets) string {
	return buckets.Find(count).Color
}

// BucketLabel returns the label of the bucket holding count.
func BucketLabel(count float64, buckets Buckets) string {
	return buckets.Find(count).Label
}

// GenerateLegend returns the legend entries for buckets.
func GenerateLegend(buckets Buckets) []models.LegendEntry {
	return buckets.Legend()
}
