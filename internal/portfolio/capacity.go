// Package portfolio derives dashboard metrics from a tenant document.
// Every function here is pure: callers pass the clock in, and the same
// snapshot always yields the same numbers.
package portfolio

import (
	"math"

	"github.com/finsolar/investordash/internal/domain"
)

// SumCapacity adds up size_kwp across projects. Construction projects and
// missing sizes contribute zero.
func SumCapacity(projects []domain.Project) float64 {
	var total float64
	for _, p := range projects {
		total += p.SizeKWp()
	}
	return total
}

// EstimatePanels returns round(size*1000/wattPerPanel), or 0 when either
// input is zero.
func EstimatePanels(sizeKWp, wattPerPanel float64) int {
	if sizeKWp == 0 || wattPerPanel == 0 {
		return 0
	}
	return round(sizeKWp * 1000 / wattPerPanel)
}

// TotalPanels sums per-project estimates, not an estimate of the total.
func TotalPanels(projects []domain.Project, wattPerPanel float64) int {
	var total int
	for _, p := range projects {
		total += EstimatePanels(p.SizeKWp(), wattPerPanel)
	}
	return total
}

// round is half-up, so 87.5 -> 88 and -0.5 -> 0.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
