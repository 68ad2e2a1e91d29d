package signals

import (
	"math"

	"github.com/Kamar-Folarin/github-signals/internal/models"
	numutil "github.com/Kamar-Folarin/github-signals/pkg/utils"
)

// Popularity weights and the counts at which each weight is fully earned
const (
	popularityMax = 70

	weightStars    = 40
	weightForks    = 20
	weightWatchers = 10

	targetStars    = 50
	targetForks    = 20
	targetWatchers = 10
)

// sqrtRatio grows steeply for small values and saturates at 1 once value reaches target
func sqrtRatio(value, target int) float64 {
	if target <= 0 {
		return 0
	}
	v := math.Max(0, float64(value))
	return math.Min(1, math.Sqrt(v)/math.Sqrt(float64(target)))
}

// PopularityScore combines stars, forks and watchers into 0..70. A nil watchers count is zero.
func PopularityScore(stars, forks int, watchers *int) (int, models.PopularityMeta) {
	watcherCount := 0
	if watchers != nil {
		watcherCount = *watchers
	}

	starsPart := weightStars * sqrtRatio(stars, targetStars)
	forksPart := weightForks * sqrtRatio(forks, targetForks)
	watchPart := weightWatchers * sqrtRatio(watcherCount, targetWatchers)

	total := int(math.Round(starsPart + forksPart + watchPart))
	total = numutil.ClampInt(total, 0, popularityMax)

	meta := models.PopularityMeta{
		Inputs:  models.PopularitySignals{Stars: stars, Forks: forks, Watchers: watcherCount},
		Targets: models.PopularitySignals{Stars: targetStars, Forks: targetForks, Watchers: targetWatchers},
		Weights: models.PopularitySignals{Stars: weightStars, Forks: weightForks, Watchers: weightWatchers},
		Parts: models.PopularityParts{
			StarsPart: numutil.Round(starsPart, 2),
			ForksPart: numutil.Round(forksPart, 2),
			WatchPart: numutil.Round(watchPart, 2),
		},
		PopularityTotal: total,
	}
	return total, meta
}
