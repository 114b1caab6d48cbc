// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default: file:reach-board.db for sqlite)
  - DatabaseType: sqlite (default) or postgres
  - WriteKey: key required on mutating requests (empty disables the check)
  - ItemsPerPage: default influencer page size (default: 10)
  - ColorScheme: map palette (default: blues)
  - BucketsFile: optional YAML bucket table
  - Seed: insert sample data on startup

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	--write-key  Write key
	--per-page   Items per page
	--scheme     Color scheme
	--buckets    Bucket table file
	--env-file   Dotenv file (default: .env)
	--seed       Seed sample data

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	WRITE_KEY      → --write-key
	ITEMS_PER_PAGE → --per-page
	COLOR_SCHEME   → --scheme
	BUCKETS_FILE   → --buckets

CLI flags take precedence over environment variables. The dotenv file is
loaded first and never overrides variables that are already set; a missing
file is not an error.

# Validation

ParseFlags returns an error if:

  - PORT or ITEMS_PER_PAGE is not a number
  - items per page is not positive
  - the database type is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
  - the color scheme is unknown

Config.Buckets loads and validates the bucket table at startup.
*/
package cliparse
