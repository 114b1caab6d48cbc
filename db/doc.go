// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on PostgreSQL and SQLite.

# Tables

  - influencer: name, platform, project count and the raw follower string
  - region_audience: user count per map region code

Follower counts are stored exactly as received ("2.4M", "1,800,000").
Numeric ordering happens in the followers package, not in SQL.

# Indexes

  - influencer.platform
*/
package db
