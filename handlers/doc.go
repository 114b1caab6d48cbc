// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the reach-board API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - InfluencerHandler: influencer table (list, create, delete)
  - RegionHandler: audience map colors and legend

	influencerHandler := handlers.NewInfluencerHandler(db, cfg)
	regionHandler := handlers.NewRegionHandler(db, cfg, buckets)

# Influencer Table

Follower counts are stored as strings and ordered numerically in Go, since
SQL cannot compare "2.4M" with "1,800,000":

	GET /api/influencers?order=desc&page=2&per_page=5

The page is clamped to the pages that exist. DELETE answers with the page the
client should show next, so deleting the only row on the last page moves the
client back one page, and deleting the last row overall yields page 1 of 0.

# Audience Map

	GET /api/regions?mode=bucket
	GET /api/regions?mode=scale&scale=log&scheme=viridis
	GET /api/regions/legend

Bucket mode colors each region by its bucket; scale mode interpolates over
[0, largest region]. The bucket label is reported in both modes.

# Writes

POST, PUT and DELETE require the X-Write-Key header when a write key is
configured.
*/
package handlers
