package models

// SelectionParams controls which of a user's repositories are scored
type SelectionParams struct {
	RepoLimit       int  `json:"repo_limit"`
	IncludeForks    bool `json:"include_forks"`
	IncludeArchived bool `json:"include_archived"`
	RecentMonths    int  `json:"recent_months"`
}

// DefaultSelectionParams returns the defaults shared by the scoring endpoints
func DefaultSelectionParams(repoLimit int) SelectionParams {
	return SelectionParams{
		RepoLimit:    repoLimit,
		RecentMonths: 12,
	}
}

// ActivityParams controls the event stream scan
type ActivityParams struct {
	WindowDays int `json:"window_days"`
	PerPage    int `json:"per_page"`
	MaxPages   int `json:"max_pages"`
}

// DefaultActivityParams returns a 90 day window over at most 3 pages of 100 events
func DefaultActivityParams() ActivityParams {
	return ActivityParams{
		WindowDays: 90,
		PerPage:    100,
		MaxPages:   3,
	}
}
