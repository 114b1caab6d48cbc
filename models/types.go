package models

// Platform constants
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
)

// Region coloring modes
const (
	ModeBucket = "bucket"
	ModeScale  = "scale"
)

// Request types

type CreateInfluencerRequest struct {
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	Projects  int    `json:"projects"`
	Followers string `json:"followers"`
}

type UpsertRegionRequest struct {
	Name      string `json:"name"`
	UserCount int64  `json:"user_count"`
}

// Response types

type CreateInfluencerResponse struct {
	ID string `json:"id"`
}

// InfluencerPage is one page of influencers after sorting by follower count
type InfluencerPage struct {
	Items       []InfluencerView `json:"items"`
	TotalItems  int              `json:"total_items"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
	Order       string           `json:"order"`
}

// InfluencerView adds parsed and display forms of the follower count
type InfluencerView struct {
	Influencer
	FollowersCount   float64 `json:"followers_count"`
	FollowersDisplay string  `json:"followers_display"`
}

// RegionColor is a region as drawn on the map
type RegionColor struct {
	Region
	Color   string `json:"color"`
	Label   string `json:"label"`
	Display string `json:"display"`
}

type LegendEntry struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Domain types

// Influencer as stored. Followers is kept verbatim ("2.4M", "1,800,000").
type Influencer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	Projects  int    `json:"projects"`
	Followers string `json:"followers"`
}

// Region is a map area with its audience size
type Region struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	UserCount int64  `json:"user_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
