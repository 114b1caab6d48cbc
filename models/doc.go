// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateInfluencerRequest: name, platform, projects, followers
  - UpsertRegionRequest: name, user_count

# Response Types

Types for JSON responses:

  - CreateInfluencerResponse: id
  - InfluencerPage: items, total_items, total_pages, current_page, per_page, order
  - InfluencerView: influencer plus followers_count and followers_display
  - RegionColor: region plus color, bucket label and formatted count
  - LegendEntry: color, label
  - ErrorResponse: error, message

# Domain Types

  - Influencer: follower count kept as the raw string
  - Region: map region code, name and user count

# Constants

Platforms:

	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"

Region coloring modes:

	ModeBucket = "bucket"
	ModeScale  = "scale"
*/
package models
