package signals

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	"github.com/Kamar-Folarin/github-signals/internal/utils"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

const (
	vitalitySampleSize = 50

	// prClosedWindow is deliberately wider than the 30 day label it feeds.
	// TODO: settle on a strict 30 day window once the score is recalibrated against it.
	prClosedWindow    = 44 * 24 * time.Hour
	issueClosedDays   = 30
	releaseWindow     = 180 * 24 * time.Hour
	commitProxyWindow = 56 * 24 * time.Hour
	backlogSlack      = 5
	backlogPenalty    = 10
	vitalityMax       = 100
)

// VitalitySignals are the per-repository inputs of the vitality score
type VitalitySignals struct {
	IssuesOpen      int
	PRsOpen         int
	PRsClosed30d    int
	IssuesClosed30d int
	Releases6m      int
	Commits8w       int
}

// VitalityScore weighs recent maintenance activity into 0..100
func VitalityScore(sig VitalitySignals) int {
	score := numutil.MinInt(40, sig.Commits8w) +
		numutil.MinInt(20, sig.PRsClosed30d/2) +
		numutil.MinInt(15, sig.IssuesClosed30d/2) +
		numutil.MinInt(15, sig.Releases6m*3)

	if sig.IssuesOpen > sig.IssuesClosed30d+backlogSlack {
		score -= backlogPenalty
	}
	return numutil.ClampInt(score, 0, vitalityMax)
}

// VitalityServiceImpl implements the VitalityService interface
type VitalityServiceImpl struct {
	deps     Deps
	selector SelectorService
}

// NewVitalityService creates a new vitality scorer
func NewVitalityService(deps Deps, selector SelectorService) VitalityService {
	return &VitalityServiceImpl{deps: deps, selector: selector}
}

// Vitality scores every selected repository, ordered by score then stars
func (s *VitalityServiceImpl) Vitality(ctx context.Context, user string, params models.SelectionParams) (*models.VitalityReport, error) {
	selected, err := s.selector.Select(ctx, user, params)
	if err != nil {
		return nil, err
	}

	now := s.deps.now()
	repos := make([]models.VitalityRepo, len(selected))
	err = s.deps.processor().ForEach(ctx, len(selected), func(ctx context.Context, i int) error {
		sig, err := s.collectSignals(ctx, selected[i], now)
		if err != nil {
			return fmt.Errorf("failed to collect vitality signals for %s: %w", selected[i].Identity(), err)
		}
		repos[i] = models.VitalityRepo{
			FullName:        selected[i].Identity(),
			Stars:           selected[i].StargazersCount,
			PushedAt:        selected[i].PushedAt,
			IssuesOpen:      sig.IssuesOpen,
			PRsOpen:         sig.PRsOpen,
			PRsClosed30d:    sig.PRsClosed30d,
			IssuesClosed30d: sig.IssuesClosed30d,
			Releases6m:      sig.Releases6m,
			Commits8w:       sig.Commits8w,
			Vitality:        VitalityScore(sig),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.deps.scored("vitality", len(repos))

	sort.SliceStable(repos, func(i, j int) bool {
		if repos[i].Vitality != repos[j].Vitality {
			return repos[i].Vitality > repos[j].Vitality
		}
		return repos[i].Stars > repos[j].Stars
	})

	s.deps.log().WithFields(logrus.Fields{
		"user":  user,
		"repos": len(repos),
	}).Info("Computed vitality")

	return &models.VitalityReport{
		Username: user,
		Repos:    repos,
		Params:   params,
	}, nil
}

func (s *VitalityServiceImpl) collectSignals(ctx context.Context, repo github.Repository, now time.Time) (VitalitySignals, error) {
	var sig VitalitySignals

	var openIssues []github.Issue
	if err := s.deps.Fetcher.Get(ctx, repoPath(repo, "issues"), sampleQuery("state", "open"), &openIssues); err != nil {
		return sig, err
	}
	sig.IssuesOpen = len(openIssues)

	var openPulls []github.PullRequest
	if err := s.deps.Fetcher.Get(ctx, repoPath(repo, "pulls"), sampleQuery("state", "open"), &openPulls); err != nil {
		return sig, err
	}
	sig.PRsOpen = len(openPulls)

	var closedPulls []github.PullRequest
	if err := s.deps.Fetcher.Get(ctx, repoPath(repo, "pulls"), sampleQuery("state", "closed"), &closedPulls); err != nil {
		return sig, err
	}
	sig.PRsClosed30d = countClosedSince(closedPulls, now.Add(-prClosedWindow))

	var closedIssues []github.Issue
	if err := s.deps.Fetcher.Get(ctx, repoPath(repo, "issues"), sampleQuery("state", "closed", "since", utils.DaysAgo(now, issueClosedDays)), &closedIssues); err != nil {
		return sig, err
	}
	sig.IssuesClosed30d = len(closedIssues)

	var releases []github.Release
	if err := s.deps.Fetcher.Get(ctx, repoPath(repo, "releases"), sampleQuery(), &releases); err != nil {
		return sig, err
	}
	sig.Releases6m = countPublishedSince(releases, now.Add(-releaseWindow))

	if pushed, err := utils.ParseTimestamp(repo.PushedAt); err == nil && !pushed.Before(now.Add(-commitProxyWindow)) {
		sig.Commits8w = 1
	}

	return sig, nil
}

// sampleQuery builds a single capped page query from key/value pairs
func sampleQuery(kv ...string) url.Values {
	query := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		query.Set(kv[i], kv[i+1])
	}
	query.Set("per_page", strconv.Itoa(vitalitySampleSize))
	return query
}

// countClosedSince counts pulls whose first known of merged, closed or updated is at or after since
func countClosedSince(pulls []github.PullRequest, since time.Time) int {
	n := 0
	for _, pr := range pulls {
		stamp := firstNonEmpty(pr.MergedAt, pr.ClosedAt, pr.UpdatedAt)
		t, err := utils.ParseTimestamp(stamp)
		if err == nil && !t.Before(since) {
			n++
		}
	}
	return n
}

func countPublishedSince(releases []github.Release, since time.Time) int {
	n := 0
	for _, rel := range releases {
		t, err := utils.ParseTimestamp(rel.PublishedAt)
		if err == nil && !t.Before(since) {
			n++
		}
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
