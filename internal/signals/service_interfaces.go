package signals

import (
	"context"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
)

// SelectorService decides which repositories represent a user's active portfolio
type SelectorService interface {
	// Select returns the user's owned repositories that pass the filters, most recently pushed first
	Select(ctx context.Context, user string, params models.SelectionParams) ([]github.Repository, error)
}

// LanguageService aggregates language byte counts
type LanguageService interface {
	// LanguageMix returns the normalized language breakdown over the selected repositories
	LanguageMix(ctx context.Context, user string, params models.SelectionParams) (*models.LanguageMix, error)
}

// CommunityService scores governance and popularity
type CommunityService interface {
	// CommunityProfile scores each selected repository, best first
	CommunityProfile(ctx context.Context, user string, params models.SelectionParams) (*models.CommunityReport, error)
}

// ActivityService classifies the public event stream
type ActivityService interface {
	// ActivitySummary returns role counts, cadence KPIs and top external collaborations
	ActivitySummary(ctx context.Context, user string, params models.ActivityParams) (*models.ActivitySummary, error)
}

// VitalityService scores recent maintenance cadence
type VitalityService interface {
	// Vitality scores each selected repository, most vital first
	Vitality(ctx context.Context, user string, params models.SelectionParams) (*models.VitalityReport, error)
}

// ProfileService returns a user's profile snapshot
type ProfileService interface {
	// Profile returns the public profile and the most recently updated repositories
	Profile(ctx context.Context, user string, reposLimit int) (*models.ProfileReport, error)
}

// Recorder receives engine counters
type Recorder interface {
	RepositoriesScored(signal string, n int)
	EnrichmentAbsent(kind string)
}
