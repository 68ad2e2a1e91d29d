package models

// ProfileUser is the public profile of a user
type ProfileUser struct {
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

// RepoSummary is a compact view of a repository
type RepoSummary struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Stars           int    `json:"stars"`
	Forks           int    `json:"forks"`
	PrimaryLanguage string `json:"primary_language"`
	PushedAt        string `json:"pushed_at"`
	IsFork          bool   `json:"is_fork"`
	IsArchived      bool   `json:"is_archived"`
}

// ProfileReport pairs a user profile with their recently updated repositories
type ProfileReport struct {
	User  ProfileUser   `json:"user"`
	Repos []RepoSummary `json:"repos"`
}
