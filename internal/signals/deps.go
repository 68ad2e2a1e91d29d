package signals

import (
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/batch"
	apperrors "github.com/Kamar-Folarin/github-signals/internal/errors"
	"github.com/Kamar-Folarin/github-signals/internal/github"
)

// Deps are the collaborators shared by every service
type Deps struct {
	Fetcher   github.Fetcher
	Logger    *logrus.Logger
	Processor *batch.Processor
	// Recorder is optional
	Recorder Recorder
	// Clock defaults to time.Now
	Clock func() time.Time
}

func (d Deps) now() time.Time {
	if d.Clock != nil {
		return d.Clock().UTC()
	}
	return time.Now().UTC()
}

func (d Deps) log() *logrus.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return logrus.StandardLogger()
}

func (d Deps) processor() *batch.Processor {
	if d.Processor != nil {
		return d.Processor
	}
	return batch.NewProcessor(nil)
}

func (d Deps) scored(signal string, n int) {
	if d.Recorder != nil {
		d.Recorder.RepositoriesScored(signal, n)
	}
}

func (d Deps) absent(kind string) {
	if d.Recorder != nil {
		d.Recorder.EnrichmentAbsent(kind)
	}
}

// Services bundles one implementation of each service over the same dependencies
type Services struct {
	Selector  SelectorService
	Languages LanguageService
	Community CommunityService
	Activity  ActivityService
	Vitality  VitalityService
	Profile   ProfileService
}

// NewServices wires every service to a single selector
func NewServices(deps Deps) *Services {
	selector := NewSelectorService(deps)
	return &Services{
		Selector:  selector,
		Languages: NewLanguageService(deps, selector),
		Community: NewCommunityService(deps, selector),
		Activity:  NewActivityService(deps),
		Vitality:  NewVitalityService(deps, selector),
		Profile:   NewProfileService(deps),
	}
}

func validateUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return apperrors.NewValidationError("username is required", nil)
	}
	return nil
}

func userPath(user string, suffix ...string) string {
	return "/" + strings.Join(append([]string{"users", url.PathEscape(user)}, suffix...), "/")
}

func repoPath(repo github.Repository, suffix ...string) string {
	parts := []string{"repos", url.PathEscape(repo.Owner.Login), url.PathEscape(repo.Name)}
	return "/" + strings.Join(append(parts, suffix...), "/")
}
