package signals

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/models"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

const noLanguagesNote = "no detectable languages"

// LanguageServiceImpl implements the LanguageService interface
type LanguageServiceImpl struct {
	deps     Deps
	selector SelectorService
}

// NewLanguageService creates a new language mix aggregator
func NewLanguageService(deps Deps, selector SelectorService) LanguageService {
	return &LanguageServiceImpl{deps: deps, selector: selector}
}

// LanguageMix sums the per-language byte counts of every selected repository.
// Languages are ordered by bytes descending, then by name.
func (s *LanguageServiceImpl) LanguageMix(ctx context.Context, user string, params models.SelectionParams) (*models.LanguageMix, error) {
	selected, err := s.selector.Select(ctx, user, params)
	if err != nil {
		return nil, err
	}

	perRepo := make([]map[string]int64, len(selected))
	err = s.deps.processor().ForEach(ctx, len(selected), func(ctx context.Context, i int) error {
		var langs map[string]int64
		if err := s.deps.Fetcher.Get(ctx, repoPath(selected[i], "languages"), nil, &langs); err != nil {
			return fmt.Errorf("failed to fetch languages for %s: %w", selected[i].Identity(), err)
		}
		perRepo[i] = langs
		return nil
	})
	if err != nil {
		return nil, err
	}

	analyzed := make([]string, 0, len(selected))
	totals := make(map[string]int64)
	for i, repo := range selected {
		analyzed = append(analyzed, repo.Identity())
		for lang, bytes := range perRepo[i] {
			totals[lang] += bytes
		}
	}
	s.deps.scored("languages", len(selected))

	result := &models.LanguageMix{
		Username:      user,
		AnalyzedRepos: analyzed,
		Languages:     []models.LanguageShare{},
		Percentages:   map[string]float64{},
		Params:        params,
	}

	result.TotalBytes, result.Languages = rankLanguages(totals)
	if result.TotalBytes == 0 {
		result.Note = noLanguagesNote
		return result, nil
	}
	for _, share := range result.Languages {
		result.Percentages[share.Name] = share.Percent
	}

	s.deps.log().WithFields(logrus.Fields{
		"user":        user,
		"repos":       len(selected),
		"languages":   len(result.Languages),
		"total_bytes": result.TotalBytes,
	}).Info("Computed language mix")

	return result, nil
}

// rankLanguages orders totals by bytes descending and name ascending, and computes
// each share's percent. Languages with zero bytes are omitted.
func rankLanguages(totals map[string]int64) (int64, []models.LanguageShare) {
	var total int64
	shares := make([]models.LanguageShare, 0, len(totals))
	for name, bytes := range totals {
		if bytes <= 0 {
			continue
		}
		total += bytes
		shares = append(shares, models.LanguageShare{Name: name, Bytes: bytes})
	}
	if total == 0 {
		return 0, []models.LanguageShare{}
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	for i := range shares {
		shares[i].Percent = numutil.Percent(shares[i].Bytes, total)
	}
	return total, shares
}
