// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the reach-board API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, buckets)

# Endpoints

Health:

	GET /health

Influencer table:

	GET    /api/influencers       - Sorted, paginated list
	POST   /api/influencers       - Add influencer (X-Write-Key)
	DELETE /api/influencers/{id}  - Remove influencer, returns recomputed page (X-Write-Key)

Audience map:

	GET /api/regions         - Regions with map colors
	GET /api/regions/legend  - Bucket legend
	PUT /api/regions/{code}  - Create or update a region (X-Write-Key)

# Handler Initialization

	influencerHandler := handlers.NewInfluencerHandler(db, cfg)
	regionHandler := handlers.NewRegionHandler(db, cfg, buckets)

All handlers receive the database connection and configuration.
*/
package router
