package models

// Activity roles
const (
	RoleBuild    = "build"
	RoleReview   = "review"
	RoleFeedback = "feedback"
)

// ActivityKPIs are the headline recency and cadence numbers
type ActivityKPIs struct {
	LastActiveDaysAgo *int    `json:"last_active_days_ago"`
	ActiveWeeks12w    int     `json:"active_weeks_12w"`
	ExternalRatioPct  float64 `json:"external_ratio_pct"`
}

// RoleShare is the count and share of events in one role
type RoleShare struct {
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// ActivityRoles is the role breakdown of a user's events
type ActivityRoles struct {
	Build    RoleShare `json:"build"`
	Review   RoleShare `json:"review"`
	Feedback RoleShare `json:"feedback"`
}

// Collaboration is the activity a user directed at one external repository
type Collaboration struct {
	Repo    string `json:"repo"`
	PRs     int    `json:"prs"`
	Reviews int    `json:"reviews"`
	Issues  int    `json:"issues"`
	Score   int    `json:"score"`
	Last    string `json:"last,omitempty"`
	HTMLURL string `json:"html_url"`
}

// ActivitySummary is the role and collaboration profile of a user's public events
type ActivitySummary struct {
	Username     string          `json:"username"`
	WindowDays   int             `json:"window_days"`
	KPIs         ActivityKPIs    `json:"kpis"`
	Roles        ActivityRoles   `json:"roles"`
	TopCollabs   []Collaboration `json:"top_collabs"`
	EventsSeen   int             `json:"events_seen"`
	PagesFetched int             `json:"pages_fetched"`
}
