package signals

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

const (
	communityMax = 100

	greenThreshold  = 60
	yellowThreshold = 35

	dotGitHubDir = ".github"
)

// Traffic classifies a community score into a tier and its justification
func Traffic(total int) (string, string) {
	switch {
	case total >= greenThreshold:
		return models.TrafficGreen, "Strong governance and/or community traction."
	case total >= yellowThreshold:
		return models.TrafficYellow, "Some governance signals or decent traction, may need context."
	default:
		return models.TrafficRed, "Few governance signals and limited traction."
	}
}

// CommunityServiceImpl implements the CommunityService interface
type CommunityServiceImpl struct {
	deps     Deps
	selector SelectorService
}

// NewCommunityService creates a new community health scorer
func NewCommunityService(deps Deps, selector SelectorService) CommunityService {
	return &CommunityServiceImpl{deps: deps, selector: selector}
}

// CommunityProfile scores governance (0..30) plus popularity (0..70) for every selected
// repository, ordered by score then stars.
func (s *CommunityServiceImpl) CommunityProfile(ctx context.Context, user string, params models.SelectionParams) (*models.CommunityReport, error) {
	selected, err := s.selector.Select(ctx, user, params)
	if err != nil {
		return nil, err
	}

	repos := make([]models.CommunityRepo, len(selected))
	err = s.deps.processor().ForEach(ctx, len(selected), func(ctx context.Context, i int) error {
		scored, err := s.scoreRepository(ctx, selected[i])
		if err != nil {
			return err
		}
		repos[i] = *scored
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.deps.scored("community", len(repos))

	sort.SliceStable(repos, func(i, j int) bool {
		if repos[i].CommunityScore != repos[j].CommunityScore {
			return repos[i].CommunityScore > repos[j].CommunityScore
		}
		return repos[i].Stars > repos[j].Stars
	})

	s.deps.log().WithFields(logrus.Fields{
		"user":  user,
		"repos": len(repos),
	}).Info("Computed community profile")

	return &models.CommunityReport{
		Username: user,
		Repos:    repos,
		Params:   params,
	}, nil
}

func (s *CommunityServiceImpl) scoreRepository(ctx context.Context, repo github.Repository) (*models.CommunityRepo, error) {
	var meta github.Repository
	if err := s.deps.Fetcher.Get(ctx, repoPath(repo), nil, &meta); err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s: %w", repo.Identity(), err)
	}

	branch := meta.DefaultBranch
	if branch == "" {
		branch = "HEAD"
	}

	root := s.listContents(ctx, repo, branch, "contents.root")
	var dotGitHub ContentListing
	if root.hasDir(dotGitHubDir) {
		dotGitHub = s.listContents(ctx, repo, branch, "contents.github", dotGitHubDir)
	}

	governanceRaw, checks := EvaluateGovernance(root, dotGitHub)
	governance := ScaleGovernance(governanceRaw)

	watchers := 0
	if meta.SubscribersCount != nil {
		watchers = *meta.SubscribersCount
	}
	popularity, popularityMeta := PopularityScore(meta.StargazersCount, meta.ForksCount, meta.SubscribersCount)

	total := numutil.ClampInt(governance+popularity, 0, communityMax)
	light, reason := Traffic(total)

	return &models.CommunityRepo{
		FullName:       repo.Identity(),
		Stars:          meta.StargazersCount,
		Forks:          meta.ForksCount,
		Watchers:       watchers,
		PushedAt:       repo.PushedAt,
		CommunityScore: total,
		TrafficLight:   light,
		TrafficReason:  reason,
		Checks:         checks,
		Breakdown: models.CommunityBreakdown{
			GovernanceRaw:    governanceRaw,
			GovernanceScaled: governance,
			Popularity:       popularity,
		},
		PopularityMeta: popularityMeta,
	}, nil
}

// listContents fetches a directory listing on branch. Any failure yields an absent
// listing, which scores as empty rather than failing the repository.
func (s *CommunityServiceImpl) listContents(ctx context.Context, repo github.Repository, branch, kind string, dir ...string) ContentListing {
	query := url.Values{}
	query.Set("ref", branch)

	var entries []github.ContentEntry
	err := s.deps.Fetcher.Get(ctx, repoPath(repo, append([]string{"contents"}, dir...)...), query, &entries)
	if err != nil {
		s.deps.absent(kind)
		s.deps.log().WithFields(logrus.Fields{
			"repo":   repo.Identity(),
			"branch": branch,
			"kind":   kind,
		}).WithError(err).Warn("Contents listing unavailable, treating as absent")
		return ContentListing{Absent: true, Reason: err}
	}

	return ContentListing{Entries: entries}
}
