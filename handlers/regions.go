// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/reach-board/auth"
	"github.com/danielhkuo/reach-board/cliparse"
	"github.com/danielhkuo/reach-board/colorscale"
	"github.com/danielhkuo/reach-board/followers"
	"github.com/danielhkuo/reach-board/middleware"
	"github.com/danielhkuo/reach-board/models"
)

type RegionHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	buckets colorscale.Buckets
}

// NewRegionHandler colors regions with buckets; nil means the default table
func NewRegionHandler(db *sql.DB, cfg cliparse.Config, buckets colorscale.Buckets) *RegionHandler {
	if len(buckets) == 0 {
		buckets = colorscale.DefaultBuckets()
	}
	return &RegionHandler{db: db, cfg: cfg, buckets: buckets}
}

// List handles GET /api/regions
// Query: mode (bucket|scale, default bucket), scale (linear|log), scheme
func (h *RegionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := q.Get("mode")
	if mode == "" {
		mode = models.ModeBucket
	}
	if mode != models.ModeBucket && mode != models.ModeScale {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mode must be bucket or scale")
		return
	}

	schemeName := q.Get("scheme")
	if schemeName == "" {
		schemeName = h.cfg.ColorScheme
	}
	scheme, ok := colorscale.SchemeByName(schemeName)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown color scheme")
		return
	}

	regions, err := h.loadRegions()
	if err != nil {
		slog.Error("failed to query regions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// the scale domain runs up to the largest region
	scaleCfg := colorscale.ScaleConfig{
		Min:         0,
		Max:         colorscale.DefaultScaleMax,
		Scale:       colorscale.ParseScale(q.Get("scale")),
		Interpolate: scheme.Interpolate,
	}
	for _, region := range regions {
		if c := float64(region.UserCount); c > scaleCfg.Max {
			scaleCfg.Max = c
		}
	}

	colored := make([]models.RegionColor, len(regions))
	for i, region := range regions {
		count := float64(region.UserCount)
		bucket := h.buckets.Find(count)

		color := bucket.Color
		if mode == models.ModeScale {
			color = colorscale.ColorByScale(count, scaleCfg)
		}

		colored[i] = models.RegionColor{
			Region:  region,
			Color:   color,
			Label:   bucket.Label,
			Display: followers.FormatFull(count),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, colored)
}

// Legend handles GET /api/regions/legend
func (h *RegionHandler) Legend(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, colorscale.GenerateLegend(h.buckets))
}

// Upsert handles PUT /api/regions/{code}
func (h *RegionHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateWriteKey(r.Header.Get(auth.WriteKeyHeader), h.cfg.WriteKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid write key")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(r.PathValue("code")))
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.UpsertRegionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.UserCount < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_count must not be negative")
		return
	}

	_, err := h.db.Exec(`
		INSERT INTO region_audience (code, name, user_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = excluded.name, user_count = excluded.user_count
	`, code, req.Name, req.UserCount)
	if err != nil {
		slog.Error("failed to upsert region", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("region updated", "code", code, "user_count", req.UserCount)

	middleware.JSONResponse(w, http.StatusOK, models.Region{
		Code:      code,
		Name:      req.Name,
		UserCount: req.UserCount,
	})
}

func (h *RegionHandler) loadRegions() ([]models.Region, error) {
	rows, err := h.db.Query(`SELECT code, name, user_count FROM region_audience ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.Code, &region.Name, &region.UserCount); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}

	return regions, rows.Err()
}
