package models

// Traffic light tiers for the community score
const (
	TrafficGreen  = "green"
	TrafficYellow = "yellow"
	TrafficRed    = "red"
)

// GovernanceChecks records which governance signals were found
type GovernanceChecks struct {
	Readme              bool `json:"readme"`
	LicenseLike         bool `json:"license_like"`
	Contributing        bool `json:"contributing"`
	Maintainers         bool `json:"maintainers"`
	IssueTemplate       bool `json:"issue_template"`
	PullRequestTemplate bool `json:"pull_request_template"`
	SecurityPolicyLike  bool `json:"security_policy_like"`
	DocsFolder          bool `json:"docs_folder"`
}

// CommunityBreakdown shows how the community score was assembled
type CommunityBreakdown struct {
	GovernanceRaw    int `json:"governance_0_90"`
	GovernanceScaled int `json:"governance_scaled_0_30"`
	Popularity       int `json:"popularity_0_70"`
}

// PopularitySignals is a stars/forks/watchers triple
type PopularitySignals struct {
	Stars    int `json:"stars"`
	Forks    int `json:"forks"`
	Watchers int `json:"watchers"`
}

// PopularityParts holds each signal's weighted contribution
type PopularityParts struct {
	StarsPart float64 `json:"stars_part"`
	ForksPart float64 `json:"forks_part"`
	WatchPart float64 `json:"watch_part"`
}

// PopularityMeta is the audit trail of the popularity score
type PopularityMeta struct {
	Inputs          PopularitySignals `json:"inputs"`
	Targets         PopularitySignals `json:"targets"`
	Weights         PopularitySignals `json:"weights"`
	Parts           PopularityParts   `json:"parts"`
	PopularityTotal int               `json:"popularity_total"`
}

// CommunityRepo is one repository's community health result
type CommunityRepo struct {
	FullName       string             `json:"full_name"`
	Stars          int                `json:"stars"`
	Forks          int                `json:"forks"`
	Watchers       int                `json:"watchers"`
	PushedAt       string             `json:"pushed_at,omitempty"`
	CommunityScore int                `json:"community_score"`
	TrafficLight   string             `json:"traffic_light"`
	TrafficReason  string             `json:"traffic_reason"`
	Checks         GovernanceChecks   `json:"checks"`
	Breakdown      CommunityBreakdown `json:"breakdown"`
	PopularityMeta PopularityMeta     `json:"popularity_meta"`
}

// CommunityReport is the community health of a user's selected repositories
type CommunityReport struct {
	Username string          `json:"username"`
	Repos    []CommunityRepo `json:"repos"`
	Params   SelectionParams `json:"params"`
}
