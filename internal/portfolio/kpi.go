package portfolio

import (
	"time"

	"github.com/finsolar/investordash/internal/domain"
)

// DetectSchema reports construction when any primary project uses the
// budget shape. Sociality does not participate.
func DetectSchema(t *domain.Tenant) domain.Schema {
	for _, p := range t.Projects {
		if p.Kind == domain.KindConstruction {
			return domain.SchemaConstruction
		}
	}
	return domain.SchemaSolar
}

func SolarKPIs(t *domain.Tenant, policy StepPolicy, now time.Time) domain.SolarKPIs {
	combined := t.Combined()
	return domain.SolarKPIs{
		TotalCapacityKWp: SumCapacity(combined),
		TotalProjects:    len(combined),
		EstimatedPanels:  TotalPanels(combined, t.WattPerPanel()),
		AverageProgress:  PortfolioProgress(t, policy, now),
	}
}

// ConstructionKPIs is a plain tally over primary projects.
func ConstructionKPIs(t *domain.Tenant) domain.ConstructionKPIs {
	k := domain.ConstructionKPIs{TotalProjects: len(t.Projects)}
	for _, p := range t.Projects {
		if p.Kind != domain.KindConstruction {
			continue
		}
		k.TotalBudget += p.Construction.Budget.Float()
		if p.Construction.IsActive() {
			k.ActiveProjects++
		}
	}
	return k
}

// Summarize picks the KPI block matching the tenant's schema.
func Summarize(t *domain.Tenant, policy StepPolicy, now time.Time) domain.Summary {
	switch DetectSchema(t) {
	case domain.SchemaConstruction:
		k := ConstructionKPIs(t)
		return domain.Summary{Schema: domain.SchemaConstruction, Construction: &k}
	default:
		k := SolarKPIs(t, policy, now)
		return domain.Summary{Schema: domain.SchemaSolar, Policy: policy.Name, Solar: &k}
	}
}
