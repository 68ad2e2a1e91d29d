package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/github-signals/internal/batch"
	"github.com/Kamar-Folarin/github-signals/internal/config"
	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	"github.com/Kamar-Folarin/github-signals/internal/signals"
)

// Version is set at build time with -ldflags
var Version = "dev"

// ServicesFactory builds the services a command runs against
type ServicesFactory func() (*signals.Services, error)

// NewRootCommand creates the signals command tree
func NewRootCommand(factory ServicesFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "signals",
		Short: "Recruiter signals from a user's public GitHub activity",
		Long: `signals derives language mix, community health, maintenance vitality
and activity roles for a GitHub user and prints them as JSON.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newSelectionCommand(factory, "languages", "Language mix across selected repositories", 30,
			func(ctx context.Context, s *signals.Services, user string, p models.SelectionParams) (interface{}, error) {
				return s.Languages.LanguageMix(ctx, user, p)
			}),
		newSelectionCommand(factory, "community", "Governance and popularity per repository", 10,
			func(ctx context.Context, s *signals.Services, user string, p models.SelectionParams) (interface{}, error) {
				return s.Community.CommunityProfile(ctx, user, p)
			}),
		newSelectionCommand(factory, "vitality", "Maintenance cadence per repository", 10,
			func(ctx context.Context, s *signals.Services, user string, p models.SelectionParams) (interface{}, error) {
				return s.Vitality.Vitality(ctx, user, p)
			}),
		newActivityCommand(factory),
		newProfileCommand(factory),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "signals version %s\n", Version)
			},
		},
	)

	return root
}

// Execute runs the root command against the configured GitHub API
func Execute() error {
	return NewRootCommand(DefaultServices).Execute()
}

// DefaultServices wires services from the environment configuration. Logs go to stderr.
func DefaultServices() (*signals.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	client := github.NewClient(cfg.GitHub, logger)
	return signals.NewServices(signals.Deps{
		Fetcher:   client,
		Logger:    logger,
		Processor: batch.NewProcessor(cfg.Batch),
	}), nil
}

type selectionRunner func(ctx context.Context, s *signals.Services, user string, p models.SelectionParams) (interface{}, error)

func newSelectionCommand(factory ServicesFactory, use, short string, defaultLimit int, run selectionRunner) *cobra.Command {
	params := models.DefaultSelectionParams(defaultLimit)

	cmd := &cobra.Command{
		Use:   use + " <username>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := factory()
			if err != nil {
				return err
			}
			result, err := run(cmd.Context(), services, args[0], params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVar(&params.RepoLimit, "repo-limit", params.RepoLimit, "Repositories to consider (1-100)")
	cmd.Flags().BoolVar(&params.IncludeForks, "include-forks", false, "Include forked repositories")
	cmd.Flags().BoolVar(&params.IncludeArchived, "include-archived", false, "Include archived repositories")
	cmd.Flags().IntVar(&params.RecentMonths, "recent-months", params.RecentMonths, "Only repositories pushed within this many months, 0 disables")
	return cmd
}

func newActivityCommand(factory ServicesFactory) *cobra.Command {
	params := models.DefaultActivityParams()

	cmd := &cobra.Command{
		Use:   "activity <username>",
		Short: "Build, review and feedback roles from public events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := factory()
			if err != nil {
				return err
			}
			summary, err := services.Activity.ActivitySummary(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().IntVar(&params.WindowDays, "days", params.WindowDays, "Window in days (1-365)")
	cmd.Flags().IntVar(&params.PerPage, "per-page", params.PerPage, "Events per page (1-100)")
	cmd.Flags().IntVar(&params.MaxPages, "max-pages", params.MaxPages, "Pages to scan (1-10)")
	return cmd
}

func newProfileCommand(factory ServicesFactory) *cobra.Command {
	reposLimit := 5

	cmd := &cobra.Command{
		Use:   "profile <username>",
		Short: "Public profile and recently updated repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := factory()
			if err != nil {
				return err
			}
			report, err := services.Profile.Profile(cmd.Context(), args[0], reposLimit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVar(&reposLimit, "repos-limit", reposLimit, "Number of repositories (1-20)")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
