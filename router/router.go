// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/reach-board/cliparse"
	"github.com/danielhkuo/reach-board/colorscale"
	"github.com/danielhkuo/reach-board/handlers"
	"github.com/danielhkuo/reach-board/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, buckets colorscale.Buckets) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	influencerHandler := handlers.NewInfluencerHandler(db, cfg)
	regionHandler := handlers.NewRegionHandler(db, cfg, buckets)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Influencer table
	mux.HandleFunc("GET /api/influencers", middleware.WithLogging(influencerHandler.List))
	mux.HandleFunc("POST /api/influencers", middleware.WithLogging(influencerHandler.Create))
	mux.HandleFunc("DELETE /api/influencers/{id}", middleware.WithLogging(influencerHandler.Delete))

	// Audience map
	mux.HandleFunc("GET /api/regions", middleware.WithLogging(regionHandler.List))
	mux.HandleFunc("GET /api/regions/legend", middleware.WithLogging(regionHandler.Legend))
	mux.HandleFunc("PUT /api/regions/{code}", middleware.WithLogging(regionHandler.Upsert))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("reach-board API v1"))
	})

	return mux
}
