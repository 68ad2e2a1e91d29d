package models

// LanguageShare is one language's slice of the analysed byte total
type LanguageShare struct {
	Name    string  `json:"name"`
	Bytes   int64   `json:"bytes"`
	Percent float64 `json:"percent"`
}

// LanguageMix is the language breakdown across a user's selected repositories
type LanguageMix struct {
	Username      string             `json:"username"`
	AnalyzedRepos []string           `json:"analyzed_repos"`
	TotalBytes    int64              `json:"total_bytes"`
	Languages     []LanguageShare    `json:"languages"`
	Percentages   map[string]float64 `json:"percentages"`
	Note          string             `json:"note,omitempty"`
	Params        SelectionParams    `json:"params"`
}
