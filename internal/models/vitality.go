package models

// VitalityRepo is one repository's maintenance signals and score
type VitalityRepo struct {
	FullName        string `json:"full_name"`
	Stars           int    `json:"stars"`
	PushedAt        string `json:"pushed_at,omitempty"`
	IssuesOpen      int    `json:"issues_open"`
	PRsOpen         int    `json:"prs_open"`
	PRsClosed30d    int    `json:"prs_closed_30d"`
	IssuesClosed30d int    `json:"issues_closed_30d"`
	Releases6m      int    `json:"releases_6m"`
	Commits8w       int    `json:"commits_8w"`
	Vitality        int    `json:"vitality"`
}

// VitalityReport is the vitality of a user's selected repositories
type VitalityReport struct {
	Username string          `json:"username"`
	Repos    []VitalityRepo  `json:"repos"`
	Params   SelectionParams `json:"params"`
}
