package signals

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

const (
	defaultProfileRepos = 5
	maxProfileRepos     = 20
)

// ProfileServiceImpl implements the ProfileService interface
type ProfileServiceImpl struct {
	deps Deps
}

// NewProfileService creates a new profile snapshot service
func NewProfileService(deps Deps) ProfileService {
	return &ProfileServiceImpl{deps: deps}
}

// Profile fetches the user and their most recently updated repositories.
// A zero reposLimit uses the default of 5.
func (s *ProfileServiceImpl) Profile(ctx context.Context, user string, reposLimit int) (*models.ProfileReport, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if reposLimit == 0 {
		reposLimit = defaultProfileRepos
	}
	reposLimit = numutil.ClampInt(reposLimit, 1, maxProfileRepos)

	var u github.User
	if err := s.deps.Fetcher.Get(ctx, userPath(user), nil, &u); err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", user, err)
	}

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(reposLimit))
	query.Set("sort", "updated")

	var repos []github.Repository
	if err := s.deps.Fetcher.Get(ctx, userPath(user, "repos"), query, &repos); err != nil {
		return nil, fmt.Errorf("failed to fetch repositories for %s: %w", user, err)
	}

	report := &models.ProfileReport{
		User: models.ProfileUser{
			Login:       u.Login,
			Name:        u.Name,
			Bio:         u.Bio,
			Company:     u.Company,
			Location:    u.Location,
			Followers:   u.Followers,
			PublicRepos: u.PublicRepos,
			CreatedAt:   u.CreatedAt,
			HTMLURL:     u.HTMLURL,
		},
		Repos: make([]models.RepoSummary, 0, len(repos)),
	}
	for _, repo := range repos {
		report.Repos = append(report.Repos, models.RepoSummary{
			Name:            repo.Name,
			FullName:        repo.Identity(),
			HTMLURL:         repo.HTMLURL,
			Stars:           repo.StargazersCount,
			Forks:           repo.ForksCount,
			PrimaryLanguage: repo.Language,
			PushedAt:        repo.PushedAt,
			IsFork:          repo.Fork,
			IsArchived:      repo.Archived,
		})
	}

	s.deps.log().WithFields(logrus.Fields{
		"user":  user,
		"repos": len(report.Repos),
	}).Debug("Fetched profile")

	return report, nil
}
