package portfolio

import (
	"time"

	"github.com/finsolar/investordash/internal/domain"
)

// PortfolioProgress blends step scores across projects and sociality.
// Scores are weighted by size_kwp; when the portfolio has no capacity the
// plain mean is used instead. An empty portfolio is 0.
func PortfolioProgress(t *domain.Tenant, policy StepPolicy, now time.Time) int {
	projects := t.Combined()
	if len(projects) == 0 {
		return 0
	}

	totalCap := SumCapacity(projects)
	if totalCap <= 0 {
		var sum float64
		for _, p := range projects {
			sum += float64(policy.Score(p, now))
		}
		return round(sum / float64(len(projects)))
	}

	var weighted float64
	for _, p := range projects {
		weighted += float64(policy.Score(p, now)) * p.SizeKWp()
	}
	return round(weighted / totalCap)
}
