// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package colorscale

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type bucketFile struct {
	Buckets []bucketEntry `yaml:"buckets"`
}

type bucketEntry struct {
	Min   float64  `yaml:"min"`
	Max   *float64 `yaml:"max"`
	Color string   `yaml:"color"`
	Label string   `yaml:"label"`
}

// LoadBuckets decodes a YAML bucket table. A missing or null max marks the
// unbounded last bucket. The result is validated.
func LoadBuckets(r io.Reader) (Buckets, error) {
	var file bucketFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode bucket table: %w", err)
	}

	buckets := make(Buckets, len(file.Buckets))
	for i, entry := range file.Buckets {
		upper := math.Inf(1)
		if entry.Max != nil {
			upper = *entry.Max
		}
		buckets[i] = Bucket{
			Min:   entry.Min,
			Max:   upper,
			Color: entry.Color,
			Label: entry.Label,
		}
	}

	if err := buckets.Validate(); err != nil {
		return nil, err
	}
	return buckets, nil
}

// LoadBucketsFile reads a bucket table from path.
func LoadBucketsFile(path string) (Buckets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket table: %w", err)
	}
	defer f.Close()

	return LoadBuckets(f)
}
