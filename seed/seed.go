// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed fills an empty database with sample dashboard data.
package seed

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/reach-board/auth"
	"github.com/danielhkuo/reach-board/models"
)

// Influencers are the sample rows. Follower strings mix the formats the
// dashboard receives from upstream.
var Influencers = []models.Influencer{
	{Name: "Ava Martinez", Platform: models.PlatformInstagram, Projects: 12, Followers: "2.4M"},
	{Name: "Liam Chen", Platform: models.PlatformYouTube, Projects: 8, Followers: "1,800,000"},
	{Name: "Sofia Rossi", Platform: models.PlatformTikTok, Projects: 15, Followers: "3.1M"},
	{Name: "Noah Williams", Platform: models.PlatformInstagram, Projects: 5, Followers: "987K"},
	{Name: "Mia Johnson", Platform: models.PlatformTwitter, Projects: 9, Followers: "1.5M"},
	{Name: "Lucas Silva", Platform: models.PlatformYouTube, Projects: 11, Followers: "2,100,000"},
	{Name: "Emma Dubois", Platform: models.PlatformTikTok, Projects: 4, Followers: "890K"},
	{Name: "Ethan Park", Platform: models.PlatformInstagram, Projects: 7, Followers: "1.7M"},
	{Name: "Olivia Brown", Platform: models.PlatformTwitter, Projects: 6, Followers: "1,300,000"},
	{Name: "Mateo Garcia", Platform: models.PlatformYouTube, Projects: 14, Followers: "2.8M"},
}

// Regions are the sample map regions, spread across the default buckets.
var Regions = []models.Region{
	{Code: "US", Name: "United States", UserCount: 1_250_000},
	{Code: "BR", Name: "Brazil", UserCount: 640_000},
	{Code: "IN", Name: "India", UserCount: 410_000},
	{Code: "GB", Name: "United Kingdom", UserCount: 185_000},
	{Code: "DE", Name: "Germany", UserCount: 96_000},
	{Code: "FR", Name: "France", UserCount: 72_500},
	{Code: "JP", Name: "Japan", UserCount: 25_000},
	{Code: "MX", Name: "Mexico", UserCount: 18_200},
	{Code: "AU", Name: "Australia", UserCount: 5_000},
	{Code: "NZ", Name: "New Zealand", UserCount: 3_400},
	{Code: "IS", Name: "Iceland", UserCount: 999},
}

// Result reports how many rows were written.
type Result struct {
	Influencers int
	Regions     int
}

// Run inserts the sample influencers when the influencer table is empty and
// upserts the sample regions.
func Run(db *sql.DB) (Result, error) {
	var res Result

	tx, err := db.Begin()
	if err != nil {
		return res, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM influencer`).Scan(&existing); err != nil {
		return res, fmt.Errorf("failed to count influencers: %w", err)
	}

	if existing == 0 {
		for _, inf := range Influencers {
			_, err := tx.Exec(`
				INSERT INTO influencer (id, name, platform, projects, followers)
				VALUES ($1, $2, $3, $4, $5)
			`, auth.GenerateID(), inf.Name, inf.Platform, inf.Projects, inf.Followers)
			if err != nil {
				return res, fmt.Errorf("failed to insert influencer %q: %w", inf.Name, err)
			}
			res.Influencers++
		}
	} else {
		slog.Info("influencers already present, skipping", "count", existing)
	}

	for _, region := range Regions {
		_, err := tx.Exec(`
			INSERT INTO region_audience (code, name, user_count)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO UPDATE SET name = excluded.name, user_count = excluded.user_count
		`, region.Code, region.Name, region.UserCount)
		if err != nil {
			return res, fmt.Errorf("failed to upsert region %s: %w", region.Code, err)
		}
		res.Regions++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit seed data: %w", err)
	}

	slog.Info("seed data written", "influencers", res.Influencers, "regions", res.Regions)
	return res, nil
}
