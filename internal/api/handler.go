package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "github.com/Kamar-Folarin/github-signals/internal/errors"
	"github.com/Kamar-Folarin/github-signals/internal/models"
	"github.com/Kamar-Folarin/github-signals/internal/signals"
)

// Default repository limits per endpoint
const (
	defaultLanguageRepos  = 30
	defaultCommunityRepos = 10
	defaultVitalityRepos  = 10
	defaultProfileRepos   = 5
)

// Handler handles HTTP requests for the signals API
type Handler struct {
	languages signals.LanguageService
	community signals.CommunityService
	activity  signals.ActivityService
	vitality  signals.VitalityService
	profile   signals.ProfileService
	logger    *logrus.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(
	languages signals.LanguageService,
	community signals.CommunityService,
	activity signals.ActivityService,
	vitality signals.VitalityService,
	profile signals.ProfileService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		languages: languages,
		community: community,
		activity:  activity,
		vitality:  vitality,
		profile:   profile,
		logger:    logger,
	}
}

// NewHandlerFromServices creates a Handler over a wired service bundle
func NewHandlerFromServices(s *signals.Services, logger *logrus.Logger) *Handler {
	return NewHandler(s.Languages, s.Community, s.Activity, s.Vitality, s.Profile, logger)
}

// selectionQuery holds the query parameters shared by the scoring endpoints
type selectionQuery struct {
	Username        string `form:"username" binding:"required"`
	RepoLimit       int    `form:"repo_limit"`
	IncludeForks    bool   `form:"include_forks"`
	IncludeArchived bool   `form:"include_archived"`
	RecentMonths    int    `form:"recent_months"`
}

func (q selectionQuery) params() models.SelectionParams {
	return models.SelectionParams{
		RepoLimit:       q.RepoLimit,
		IncludeForks:    q.IncludeForks,
		IncludeArchived: q.IncludeArchived,
		RecentMonths:    q.RecentMonths,
	}
}

// activityQuery holds the query parameters of the activity endpoint
type activityQuery struct {
	Username string `form:"username" binding:"required"`
	Days     int    `form:"days"`
	PerPage  int    `form:"per_page"`
	MaxPages int    `form:"max_pages"`
}

// analyzeQuery holds the query parameters of the profile endpoint
type analyzeQuery struct {
	Username   string `form:"username" binding:"required"`
	ReposLimit int    `form:"repos_limit"`
}

// bindSelection binds the selection query on top of the endpoint defaults
func (h *Handler) bindSelection(c *gin.Context, repoLimit int) (selectionQuery, bool) {
	defaults := models.DefaultSelectionParams(repoLimit)
	q := selectionQuery{
		RepoLimit:    defaults.RepoLimit,
		RecentMonths: defaults.RecentMonths,
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondWithError(c, invalidQuery(err))
		return q, false
	}
	return q, true
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// Analyze godoc
// @Summary Profile snapshot
// @Description Returns the public profile and the most recently updated repositories of a user
// @Tags profile
// @Produce json
// @Param username query string true "GitHub username"
// @Param repos_limit query int false "Number of repositories (1-20)" default(5)
// @Success 200 {object} models.ProfileReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /analyze [get]
func (h *Handler) Analyze(c *gin.Context) {
	q := analyzeQuery{ReposLimit: defaultProfileRepos}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondWithError(c, invalidQuery(err))
		return
	}

	report, err := h.profile.Profile(c.Request.Context(), q.Username, q.ReposLimit)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Languages godoc
// @Summary Language mix
// @Description Aggregates language byte counts across the user's selected repositories
// @Tags signals
// @Produce json
// @Param username query string true "GitHub username"
// @Param repo_limit query int false "Repositories to analyse (1-100)" default(30)
// @Param include_forks query bool false "Include forks" default(false)
// @Param include_archived query bool false "Include archived repositories" default(false)
// @Param recent_months query int false "Only repositories pushed within this many months, 0 disables" default(12)
// @Success 200 {object} models.LanguageMix
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /languages [get]
func (h *Handler) Languages(c *gin.Context) {
	q, ok := h.bindSelection(c, defaultLanguageRepos)
	if !ok {
		return
	}

	mix, err := h.languages.LanguageMix(c.Request.Context(), q.Username, q.params())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, mix)
}

// Community godoc
// @Summary Community health
// @Description Scores governance files and popularity of the user's selected repositories
// @Tags signals
// @Produce json
// @Param username query string true "GitHub username"
// @Param repo_limit query int false "Repositories to score (1-100)" default(10)
// @Param include_forks query bool false "Include forks" default(false)
// @Param include_archived query bool false "Include archived repositories" default(false)
// @Param recent_months query int false "Only repositories pushed within this many months, 0 disables" default(12)
// @Success 200 {object} models.CommunityReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /community [get]
func (h *Handler) Community(c *gin.Context) {
	q, ok := h.bindSelection(c, defaultCommunityRepos)
	if !ok {
		return
	}

	report, err := h.community.CommunityProfile(c.Request.Context(), q.Username, q.params())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Vitality godoc
// @Summary Maintenance vitality
// @Description Scores recent issue, pull request and release activity of the user's selected repositories
// @Tags signals
// @Produce json
// @Param username query string true "GitHub username"
// @Param repo_limit query int false "Repositories to score (1-100)" default(10)
// @Param include_forks query bool false "Include forks" default(false)
// @Param include_archived query bool false "Include archived repositories" default(false)
// @Param recent_months query int false "Only repositories pushed within this many months, 0 disables" default(12)
// @Success 200 {object} models.VitalityReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /vitality [get]
func (h *Handler) Vitality(c *gin.Context) {
	q, ok := h.bindSelection(c, defaultVitalityRepos)
	if !ok {
		return
	}

	report, err := h.vitality.Vitality(c.Request.Context(), q.Username, q.params())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Activity godoc
// @Summary Activity roles
// @Description Classifies the user's public events into build, review and feedback roles
// @Tags signals
// @Produce json
// @Param username query string true "GitHub username"
// @Param days query int false "Window in days (1-365)" default(90)
// @Param per_page query int false "Events per page (1-100)" default(100)
// @Param max_pages query int false "Pages to scan (1-10)" default(3)
// @Success 200 {object} models.ActivitySummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /activity [get]
func (h *Handler) Activity(c *gin.Context) {
	defaults := models.DefaultActivityParams()
	q := activityQuery{
		Days:     defaults.WindowDays,
		PerPage:  defaults.PerPage,
		MaxPages: defaults.MaxPages,
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondWithError(c, invalidQuery(err))
		return
	}

	summary, err := h.activity.ActivitySummary(c.Request.Context(), q.Username, models.ActivityParams{
		WindowDays: q.Days,
		PerPage:    q.PerPage,
		MaxPages:   q.MaxPages,
	})
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func invalidQuery(err error) error {
	return apperrors.NewValidationError("invalid query parameters: "+err.Error(), err)
}

// respondWithError writes {"error": message} with the status mapped from err
func (h *Handler) respondWithError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	appErr := apperrors.FromUpstream(err)

	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	entry := h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"path":       c.Request.URL.Path,
		"status":     status,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	c.JSON(status, ErrorResponse{Error: message})
}
