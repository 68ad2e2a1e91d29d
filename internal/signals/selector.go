package signals

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	"github.com/Kamar-Folarin/github-signals/internal/utils"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

const (
	maxRepoLimit = 100
	reposPerPage = 100
	repoPages    = 3
)

// SelectorServiceImpl implements the SelectorService interface
type SelectorServiceImpl struct {
	deps Deps
}

// NewSelectorService creates a new repository selector
func NewSelectorService(deps Deps) SelectorService {
	return &SelectorServiceImpl{deps: deps}
}

// Select pages through the user's owned repositories (most recently pushed first)
// and keeps them in order until the clamped limit is reached. No further pages are
// requested once the limit is met. A missing or unparseable pushed_at never excludes a repository.
func (s *SelectorServiceImpl) Select(ctx context.Context, user string, params models.SelectionParams) ([]github.Repository, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}

	limit := numutil.ClampInt(params.RepoLimit, 1, maxRepoLimit)
	now := s.deps.now()
	recencyFilter := params.RecentMonths > 0
	cutoff := utils.MonthsAgo(now, params.RecentMonths)

	query := url.Values{}
	query.Set("type", "owner")
	query.Set("sort", "pushed")
	query.Set("direction", "desc")

	selected := make([]github.Repository, 0, limit)
	skipped := 0
	err := github.Paginate(ctx, s.deps.Fetcher, userPath(user, "repos"), query, reposPerPage, repoPages, func(page []github.Repository) bool {
		for _, repo := range page {
			if !keepRepository(repo, params, recencyFilter, cutoff) {
				skipped++
				continue
			}
			selected = append(selected, repo)
			if len(selected) >= limit {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", user, err)
	}

	s.deps.log().WithFields(logrus.Fields{
		"user":     user,
		"limit":    limit,
		"selected": len(selected),
		"skipped":  skipped,
	}).Debug("Selected repositories")

	return selected, nil
}

func keepRepository(repo github.Repository, params models.SelectionParams, recencyFilter bool, cutoff time.Time) bool {
	if repo.Fork && !params.IncludeForks {
		return false
	}
	if repo.Archived && !params.IncludeArchived {
		return false
	}
	if recencyFilter && repo.PushedAt != "" {
		pushed, err := utils.ParseTimestamp(repo.PushedAt)
		if err == nil && pushed.Before(cutoff) {
			return false
		}
	}
	return true
}
