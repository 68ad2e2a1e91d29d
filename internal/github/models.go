package github

import (
	"bytes"
	"encoding/json"
)

// Owner is the account owning a repository
type Owner struct {
	Login string `json:"login"`
}

// Repository is a repository as returned by the repos endpoints.
// Timestamps are kept raw so that callers decide how to treat parse failures.
type Repository struct {
	Name             string `json:"name"`
	FullName         string `json:"full_name"`
	Owner            Owner  `json:"owner"`
	HTMLURL          string `json:"html_url"`
	Description      string `json:"description"`
	Language         string `json:"language"`
	Fork             bool   `json:"fork"`
	Archived         bool   `json:"archived"`
	StargazersCount  int    `json:"stargazers_count"`
	ForksCount       int    `json:"forks_count"`
	WatchersCount    int    `json:"watchers_count"`
	SubscribersCount *int   `json:"subscribers_count"`
	OpenIssuesCount  int    `json:"open_issues_count"`
	DefaultBranch    string `json:"default_branch"`
	PushedAt         string `json:"pushed_at"`
	CreatedAt        string `json:"created_at"`
}

// Identity returns the "owner/name" of the repository
func (r Repository) Identity() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Owner.Login + "/" + r.Name
}

// EventRepo identifies the repository an event targets
type EventRepo struct {
	Name string `json:"name"`
}

// Event is an entry of a user's public event stream
type Event struct {
	Type      string          `json:"type"`
	Repo      EventRepo       `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt string          `json:"created_at"`
}

// IssueCommentPayload is the payload of an IssueCommentEvent
type IssueCommentPayload struct {
	Issue struct {
		Number      int             `json:"number"`
		PullRequest json.RawMessage `json:"pull_request"`
	} `json:"issue"`
}

// OnPullRequest reports whether the commented issue is a pull request
func (p IssueCommentPayload) OnPullRequest() bool {
	marker := bytes.TrimSpace(p.Issue.PullRequest)
	return len(marker) > 0 && !bytes.Equal(marker, []byte("null"))
}

// ContentEntry is a single entry of a directory listing
type ContentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// IsDir reports whether the entry is a directory
func (e ContentEntry) IsDir() bool {
	return e.Type == "dir"
}

// Issue is an issue (or pull request) from the issues endpoint
type Issue struct {
	Number   int    `json:"number"`
	State    string `json:"state"`
	ClosedAt string `json:"closed_at"`
}

// PullRequest is an entry of the pulls endpoint
type PullRequest struct {
	Number    int    `json:"number"`
	State     string `json:"state"`
	MergedAt  string `json:"merged_at"`
	ClosedAt  string `json:"closed_at"`
	UpdatedAt string `json:"updated_at"`
}

// Release is an entry of the releases endpoint
type Release struct {
	TagName     string `json:"tag_name"`
	PublishedAt string `json:"published_at"`
}

// User is a public user profile
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
	CreatedAt   string `json:"created_at"`
	HTMLURL     string `json:"html_url"`
}
