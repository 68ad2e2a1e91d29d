package signals

import (
	"math"
	"strings"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

// Governance signal weights; they sum to governanceMax.
const (
	weightReadme         = 18
	weightLicense        = 18
	weightContributing   = 12
	weightMaintainers    = 8
	weightIssueTemplate  = 5
	weightPRTemplate     = 5
	weightSecurityPolicy = 12
	weightDocsFolder     = 12

	governanceMax    = 90
	governanceScaled = 30
)

// ContentListing is the result of an optional directory listing.
// Absent listings carry the reason they could not be fetched and behave as empty.
type ContentListing struct {
	Entries []github.ContentEntry
	Absent  bool
	Reason  error
}

// names returns the lowercased entry names
func (l ContentListing) names() map[string]bool {
	out := make(map[string]bool, len(l.Entries))
	for _, e := range l.Entries {
		out[strings.ToLower(e.Name)] = true
	}
	return out
}

// hasDir reports whether the listing has a directory named name (case-insensitive)
func (l ContentListing) hasDir(name string) bool {
	for _, e := range l.Entries {
		if e.IsDir() && strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}

func anyOf(names map[string]bool, candidates ...string) bool {
	for _, c := range candidates {
		if names[c] {
			return true
		}
	}
	return false
}

// EvaluateGovernance scores the governance files present in the root and .github listings (0..90)
func EvaluateGovernance(root, dotGitHub ContentListing) (int, models.GovernanceChecks) {
	rootNames := root.names()
	ghNames := dotGitHub.names()

	docsFolder := root.hasDir("docs") || root.hasDir("documentation")

	checks := models.GovernanceChecks{
		// a docs folder stands in for a README
		Readme: anyOf(rootNames, "readme", "readme.md", "readme.rst") || docsFolder,
		LicenseLike: anyOf(rootNames, "license", "license.md", "copying", "copying.md") ||
			root.hasDir("licenses"),
		Contributing: anyOf(rootNames, "contributing", "contributing.md") ||
			anyOf(ghNames, "contributing", "contributing.md"),
		Maintainers: rootNames["maintainers"],
		IssueTemplate: dotGitHub.hasDir("issue_template") ||
			ghNames["issue_template.md"] || rootNames["issue_template.md"],
		PullRequestTemplate: anyOf(ghNames, "pull_request_template.md", "pull_request_template") ||
			rootNames["pull_request_template.md"],
		SecurityPolicyLike: rootNames["security.md"] || ghNames["security.md"],
		DocsFolder:         docsFolder,
	}

	score := 0
	for _, signal := range []struct {
		present bool
		weight  int
	}{
		{checks.Readme, weightReadme},
		{checks.LicenseLike, weightLicense},
		{checks.Contributing, weightContributing},
		{checks.Maintainers, weightMaintainers},
		{checks.IssueTemplate, weightIssueTemplate},
		{checks.PullRequestTemplate, weightPRTemplate},
		{checks.SecurityPolicyLike, weightSecurityPolicy},
		{checks.DocsFolder, weightDocsFolder},
	} {
		if signal.present {
			score += signal.weight
		}
	}

	if score > governanceMax {
		score = governanceMax
	}
	return score, checks
}

// ScaleGovernance maps a 0..90 governance score onto 0..30
func ScaleGovernance(raw int) int {
	scaled := int(math.Round(float64(governanceScaled) * float64(raw) / float64(governanceMax)))
	return numutil.ClampInt(scaled, 0, governanceScaled)
}
