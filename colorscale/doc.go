// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package colorscale maps audience counts to choropleth colors.

# Buckets

A bucket table is an ordered list of half-open ranges [Min, Max); the last
bucket is unbounded above. The default table:

	0-1K, 1K-5K, 5K-25K, 25K-100K, 100K-500K, 500K+

A count equal to a boundary belongs to the bucket starting there (1000 is
"1K-5K"). Counts below the first bucket, negative ones included, fall into
the first bucket:

	colorscale.ColorByBucket(999, nil)  // color of "0-1K"
	colorscale.BucketLabel(1000, nil)   // "1K-5K"

Passing nil uses DefaultBuckets. Each call to DefaultBuckets returns a fresh
copy, so callers can never alter the shared table.

# Continuous Scale

ColorByScale interpolates across [Min, Max], linearly or on a log scale,
clamping counts outside the domain to the end colors:

	cfg := colorscale.ScaleConfig{Min: 0, Max: 1e6, Scale: colorscale.Log}
	colorscale.ColorByScale(25000, cfg)

# Schemes

Named palettes (blues, greens, purples, oranges, viridis) blend their stops in
CIE Lab space. Look them up with SchemeByName.

# Bucket Files

LoadBuckets reads a YAML table and rejects gaps, overlaps and a bounded
last bucket:

	buckets:
	  - {min: 0, max: 1000, color: "#eff3ff", label: "0-1K"}
	  - {min: 1000, color: "#08519c", label: "1K+"}
*/
package colorscale
