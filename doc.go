// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the reach-board API server.

reach-board backs a marketing-analytics dashboard: an influencer table sorted
by follower count and an audience map colored by user count per region.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run . -seed

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flag / env):

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string
  - WRITE_KEY (--write-key): required header value on writes
  - ITEMS_PER_PAGE (--per-page): default page size
  - COLOR_SCHEME (--scheme): map palette
  - BUCKETS_FILE (--buckets): YAML bucket table

A .env file in the working directory is loaded first.

# Architecture

  - followers: follower-count parsing, sorting and formatting
  - paging: page math and page recovery
  - colorscale: bucket and continuous map colors
  - handlers: HTTP request handlers (influencers, regions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: IDs and write-key checks
  - db: Schema creation
  - seed: Sample data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
