package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-signals/internal/models"
	"github.com/Kamar-Folarin/github-signals/internal/signals"
)

// stubServices records the parameters each command passes through
type stubServices struct {
	selection models.SelectionParams
	activity  models.ActivityParams
	repos     int
	err       error
}

func (s *stubServices) LanguageMix(ctx context.Context, user string, p models.SelectionParams) (*models.LanguageMix, error) {
	s.selection = p
	return &models.LanguageMix{Username: user, Params: p}, s.err
}

func (s *stubServices) CommunityProfile(ctx context.Context, user string, p models.SelectionParams) (*models.CommunityReport, error) {
	s.selection = p
	return &models.CommunityReport{Username: user, Params: p}, s.err
}

func (s *stubServices) Vitality(ctx context.Context, user string, p models.SelectionParams) (*models.VitalityReport, error) {
	s.selection = p
	return &models.VitalityReport{Username: user, Params: p}, s.err
}

func (s *stubServices) ActivitySummary(ctx context.Context, user string, p models.ActivityParams) (*models.ActivitySummary, error) {
	s.activity = p
	return &models.ActivitySummary{Username: user, WindowDays: p.WindowDays}, s.err
}

func (s *stubServices) Profile(ctx context.Context, user string, reposLimit int) (*models.ProfileReport, error) {
	s.repos = reposLimit
	return &models.ProfileReport{User: models.ProfileUser{Login: user}}, s.err
}

func run(t *testing.T, stub *stubServices, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(func() (*signals.Services, error) {
		return &signals.Services{
			Languages: stub,
			Community: stub,
			Activity:  stub,
			Vitality:  stub,
			Profile:   stub,
		}, nil
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSelectionCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want models.SelectionParams
	}{
		{"languages defaults", []string{"languages", "alice"}, models.SelectionParams{RepoLimit: 30, RecentMonths: 12}},
		{"community defaults", []string{"community", "alice"}, models.SelectionParams{RepoLimit: 10, RecentMonths: 12}},
		{
			"vitality flags",
			[]string{"vitality", "alice", "--repo-limit", "4", "--include-forks", "--include-archived", "--recent-months", "0"},
			models.SelectionParams{RepoLimit: 4, IncludeForks: true, IncludeArchived: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubServices{}
			out, err := run(t, stub, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stub.selection)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(out), &decoded))
			assert.Equal(t, "alice", decoded["username"])
		})
	}
}

func TestActivityCommand(t *testing.T) {
	stub := &stubServices{}
	out, err := run(t, stub, "activity", "alice", "--days", "30", "--max-pages", "1")
	require.NoError(t, err)

	assert.Equal(t, models.ActivityParams{WindowDays: 30, PerPage: 100, MaxPages: 1}, stub.activity)
	assert.Contains(t, out, `"window_days": 30`)
}

func TestProfileCommand(t *testing.T) {
	stub := &stubServices{}
	_, err := run(t, stub, "profile", "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, stub.repos)
}

func TestCommandErrors(t *testing.T) {
	t.Run("username is required", func(t *testing.T) {
		_, err := run(t, &stubServices{}, "languages")
		assert.Error(t, err)
	})

	t.Run("service failure is returned", func(t *testing.T) {
		_, err := run(t, &stubServices{err: errors.New("boom")}, "community", "alice")
		assert.EqualError(t, err, "boom")
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, &stubServices{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "signals version dev\n", out)
}
