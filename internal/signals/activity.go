package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	"github.com/Kamar-Folarin/github-signals/internal/utils"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

const (
	maxWindowDays     = 365
	maxEventsPerPage  = 100
	maxEventPages     = 10
	trailingWeeks     = 12
	topCollaborations = 3
)

// Provider event types that carry a role
const (
	eventPush              = "PushEvent"
	eventPullRequest       = "PullRequestEvent"
	eventPullRequestReview = "PullRequestReviewEvent"
	eventIssues            = "IssuesEvent"
	eventIssueComment      = "IssueCommentEvent"
)

// EventRole maps an event onto build, review or feedback. Events without a role return "".
func EventRole(event github.Event) string {
	switch event.Type {
	case eventPush, eventPullRequest:
		return models.RoleBuild
	case eventPullRequestReview:
		return models.RoleReview
	case eventIssues:
		return models.RoleFeedback
	case eventIssueComment:
		var payload github.IssueCommentPayload
		if len(event.Payload) > 0 && json.Unmarshal(event.Payload, &payload) == nil && payload.OnPullRequest() {
			return models.RoleReview
		}
		return models.RoleFeedback
	default:
		return ""
	}
}

// collaborationEntry accumulates a user's activity on one external repository
type collaborationEntry struct {
	repo    string
	prs     int
	reviews int
	issues  int
	last    time.Time
	hasLast bool
}

func (c *collaborationEntry) score() int {
	return c.prs + c.reviews + c.issues
}

// activityTally folds a newest-first event stream into role and collaboration counts
type activityTally struct {
	user      string
	now       time.Time
	cutoff    time.Time
	weekFloor time.Time

	total     int
	external  int
	roles     map[string]int
	weeks     map[time.Time]bool
	latest    time.Time
	hasLatest bool
	collabs   map[string]*collaborationEntry
}

func newActivityTally(user string, now time.Time, windowDays int) *activityTally {
	return &activityTally{
		user:      user,
		now:       now,
		cutoff:    now.Add(-time.Duration(windowDays) * 24 * time.Hour),
		weekFloor: utils.WeekStart(now).AddDate(0, 0, -7*(trailingWeeks-1)),
		roles:     make(map[string]int),
		weeks:     make(map[time.Time]bool),
		collabs:   make(map[string]*collaborationEntry),
	}
}

// add records one event and reports false once an event older than the cutoff is seen.
// That event still counts toward recency but not toward the window.
func (t *activityTally) add(event github.Event) bool {
	created, err := utils.ParseTimestamp(event.CreatedAt)
	parsed := err == nil

	if parsed {
		if !t.hasLatest || created.After(t.latest) {
			t.latest = created
			t.hasLatest = true
		}
		if created.Before(t.cutoff) {
			return false
		}
		if week := utils.WeekStart(created); !week.Before(t.weekFloor) {
			t.weeks[week] = true
		}
	}

	t.total++
	role := EventRole(event)
	if role != "" {
		t.roles[role]++
	}

	if !utils.IsExternal(t.user, event.Repo.Name) {
		return true
	}
	t.external++
	if role == "" {
		return true
	}

	entry, ok := t.collabs[event.Repo.Name]
	if !ok {
		entry = &collaborationEntry{repo: event.Repo.Name}
		t.collabs[event.Repo.Name] = entry
	}
	switch role {
	case models.RoleBuild:
		entry.prs++
	case models.RoleReview:
		entry.reviews++
	case models.RoleFeedback:
		entry.issues++
	}
	if parsed && (!entry.hasLast || created.After(entry.last)) {
		entry.last = created
		entry.hasLast = true
	}
	return true
}

func (t *activityTally) share(role string) models.RoleShare {
	count := t.roles[role]
	return models.RoleShare{Count: count, Pct: numutil.Percent(int64(count), int64(t.total))}
}

// topCollabs ranks collaborations by score, then most recent activity, then repository name
func (t *activityTally) topCollabs() []models.Collaboration {
	entries := make([]*collaborationEntry, 0, len(t.collabs))
	for _, entry := range t.collabs {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.score() != b.score() {
			return a.score() > b.score()
		}
		if a.hasLast != b.hasLast {
			return a.hasLast
		}
		if !a.last.Equal(b.last) {
			return a.last.After(b.last)
		}
		return a.repo < b.repo
	})

	top := make([]models.Collaboration, 0, topCollaborations)
	for _, entry := range entries {
		if len(top) == topCollaborations {
			break
		}
		collab := models.Collaboration{
			Repo:    entry.repo,
			PRs:     entry.prs,
			Reviews: entry.reviews,
			Issues:  entry.issues,
			Score:   entry.score(),
			HTMLURL: utils.RepoHTMLURL(entry.repo),
		}
		if entry.hasLast {
			collab.Last = entry.last.Format(time.RFC3339)
		}
		top = append(top, collab)
	}
	return top
}

func (t *activityTally) kpis() models.ActivityKPIs {
	kpis := models.ActivityKPIs{
		ActiveWeeks12w:   len(t.weeks),
		ExternalRatioPct: numutil.Percent(int64(t.external), int64(t.total)),
	}
	if t.hasLatest {
		days := int(math.Floor(t.now.Sub(t.latest).Hours() / 24))
		if days < 0 {
			days = 0
		}
		kpis.LastActiveDaysAgo = &days
	}
	return kpis
}

// ActivityServiceImpl implements the ActivityService interface
type ActivityServiceImpl struct {
	deps Deps
}

// NewActivityService creates a new activity role classifier
func NewActivityService(deps Deps) ActivityService {
	return &ActivityServiceImpl{deps: deps}
}

// NormalizeActivityParams clamps each field to its range. Zero is below every range and clamps to 1.
func NormalizeActivityParams(params models.ActivityParams) models.ActivityParams {
	params.WindowDays = numutil.ClampInt(params.WindowDays, 1, maxWindowDays)
	params.PerPage = numutil.ClampInt(params.PerPage, 1, maxEventsPerPage)
	params.MaxPages = numutil.ClampInt(params.MaxPages, 1, maxEventPages)
	return params
}

// ActivitySummary scans the user's public events newest first and stops at the first
// event older than the window.
func (s *ActivityServiceImpl) ActivitySummary(ctx context.Context, user string, params models.ActivityParams) (*models.ActivitySummary, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	params = NormalizeActivityParams(params)

	tally := newActivityTally(user, s.deps.now(), params.WindowDays)
	pages := 0
	err := github.Paginate(ctx, s.deps.Fetcher, userPath(user, "events", "public"), url.Values{}, params.PerPage, params.MaxPages, func(page []github.Event) bool {
		pages++
		for _, event := range page {
			if !tally.add(event) {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", user, err)
	}

	summary := &models.ActivitySummary{
		Username:   user,
		WindowDays: params.WindowDays,
		KPIs:       tally.kpis(),
		Roles: models.ActivityRoles{
			Build:    tally.share(models.RoleBuild),
			Review:   tally.share(models.RoleReview),
			Feedback: tally.share(models.RoleFeedback),
		},
		TopCollabs:   tally.topCollabs(),
		EventsSeen:   tally.total,
		PagesFetched: pages,
	}

	s.deps.log().WithFields(logrus.Fields{
		"user":   user,
		"events": tally.total,
		"pages":  pages,
	}).Info("Computed activity summary")

	return summary, nil
}
