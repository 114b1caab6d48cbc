// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements run on both postgres and sqlite.
const schema = `
-- Influencers
CREATE TABLE IF NOT EXISTS influencer (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    platform TEXT NOT NULL DEFAULT 'instagram',
    projects INTEGER NOT NULL DEFAULT 0 CHECK (projects >= 0),
    followers TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_influencer_platform ON influencer(platform);

-- Audience per map region
CREATE TABLE IF NOT EXISTS region_audience (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    user_count BIGINT NOT NULL DEFAULT 0
);
`
