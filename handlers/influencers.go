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
	"github.com/danielhkuo/reach-board/followers"
	"github.com/danielhkuo/reach-board/middleware"
	"github.com/danielhkuo/reach-board/models"
	"github.com/danielhkuo/reach-board/paging"
)

// MaxItemsPerPage caps the per_page query parameter
const MaxItemsPerPage = 100

type InfluencerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewInfluencerHandler(db *sql.DB, cfg cliparse.Config) *InfluencerHandler {
	return &InfluencerHandler{db: db, cfg: cfg}
}

// List handles GET /api/influencers
// Query: order (asc|desc, default desc), page, per_page, platform
func (h *InfluencerHandler) List(w http.ResponseWriter, r *http.Request) {
	state := h.pagingState(r)
	platform := r.URL.Query().Get("platform")

	influencers, err := h.loadInfluencers(platform)
	if err != nil {
		slog.Error("failed to query influencers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, buildPage(influencers, state))
}

// Create handles POST /api/influencers
// The follower string is stored as given; unparseable values sort as 0.
func (h *InfluencerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateWriteKey(r.Header.Get(auth.WriteKeyHeader), h.cfg.WriteKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid write key")
		return
	}

	var req models.CreateInfluencerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Followers = strings.TrimSpace(req.Followers)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Followers == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "followers is required")
		return
	}
	if req.Projects < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "projects must not be negative")
		return
	}
	if req.Platform == "" {
		req.Platform = models.PlatformInstagram
	}

	id := auth.GenerateID()
	_, err := h.db.Exec(`
		INSERT INTO influencer (id, name, platform, projects, followers)
		VALUES ($1, $2, $3, $4, $5)
	`, id, req.Name, req.Platform, req.Projects, req.Followers)
	if err != nil {
		slog.Error("failed to insert influencer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create influencer")
		return
	}

	count := followers.Parse(req.Followers)
	if count == 0 {
		slog.Warn("influencer follower count did not parse", "influencer_id", id, "followers", req.Followers)
	}
	slog.Info("influencer created", "influencer_id", id, "followers_count", count)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateInfluencerResponse{ID: id})
}

// Delete handles DELETE /api/influencers/{id}
// Responds with the requested page recomputed after the deletion, so a client
// on a page that no longer exists lands on the last remaining one.
func (h *InfluencerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateWriteKey(r.Header.Get(auth.WriteKeyHeader), h.cfg.WriteKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid write key")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	res, err := h.db.Exec(`DELETE FROM influencer WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete influencer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Influencer not found")
		return
	}

	slog.Info("influencer deleted", "influencer_id", id)

	influencers, err := h.loadInfluencers(r.URL.Query().Get("platform"))
	if err != nil {
		slog.Error("failed to query influencers after delete", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, buildPage(influencers, h.pagingState(r)))
}

// pagingState reads order, page and per_page from the query
func (h *InfluencerHandler) pagingState(r *http.Request) paging.State {
	order, _ := followers.ParseOrder(r.URL.Query().Get("order"))
	perPage := min(middleware.QueryInt(r, "per_page", h.cfg.ItemsPerPage), MaxItemsPerPage)
	page := middleware.QueryInt(r, "page", 1)

	return paging.NewState(perPage, order).WithPage(page)
}

// loadInfluencers returns all influencers, optionally for one platform
func (h *InfluencerHandler) loadInfluencers(platform string) ([]models.Influencer, error) {
	query := `SELECT id, name, platform, projects, followers FROM influencer`
	var args []any
	if platform != "" {
		query += ` WHERE platform = $1`
		args = append(args, platform)
	}
	query += ` ORDER BY created_at, id`

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	influencers := []models.Influencer{}
	for rows.Next() {
		var inf models.Influencer
		if err := rows.Scan(&inf.ID, &inf.Name, &inf.Platform, &inf.Projects, &inf.Followers); err != nil {
			return nil, err
		}
		influencers = append(influencers, inf)
	}

	return influencers, rows.Err()
}

// buildPage sorts by follower count, then slices out the page in state
func buildPage(influencers []models.Influencer, state paging.State) models.InfluencerPage {
	state = state.Reconcile(len(influencers))
	sorted := followers.SortInfluencers(influencers, state.Order)
	page := paging.Paginate(sorted, state.CurrentPage, state.ItemsPerPage)

	items := make([]models.InfluencerView, len(page.Items))
	for i, inf := range page.Items {
		count := followers.Parse(inf.Followers)
		items[i] = models.InfluencerView{
			Influencer:       inf,
			FollowersCount:   count,
			FollowersDisplay: followers.FormatCompact(count),
		}
	}

	return models.InfluencerPage{
		Items:       items,
		TotalItems:  len(influencers),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		PerPage:     state.ItemsPerPage,
		Order:       string(state.Order),
	}
}
