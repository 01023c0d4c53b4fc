package portfolio

import (
	"math"
	"time"

	"github.com/finsolar/investordash/internal/domain"
)

const defaultCurrency = "USD"

// Timeline lists the steps shown on a project card. Solar projects show all
// five milestones whatever the scoring policy; construction projects show
// start and estimated end.
func Timeline(p domain.Project, now time.Time) []domain.TimelineStep {
	switch p.Kind {
	case domain.KindSolar:
		ms := domain.AllMilestones()
		steps := make([]domain.TimelineStep, 0, len(ms))
		for _, m := range ms {
			d := p.Solar.Date(m)
			steps = append(steps, domain.TimelineStep{
				Key:    string(m),
				Title:  m.Title(),
				Date:   d,
				Status: domain.ComputeStepStatus(d, now),
			})
		}
		return steps
	case domain.KindConstruction:
		c := p.Construction
		return []domain.TimelineStep{
			{Key: "start", Title: "Inicio", Date: c.StartDate, Status: domain.ComputeStepStatus(c.StartDate, now)},
			{Key: "end", Title: "Fin Estimado", Date: c.EndDate, Status: domain.ComputeStepStatus(c.EndDate, now)},
		}
	}
	return nil
}

// maxInstallationDays bounds the planned duration; longer values are
// treated as data errors.
const maxInstallationDays = 3650

// InstallationETA is the installation start plus its planned duration, or
// nil when either is missing. Fractional days are truncated; durations that
// are not in 1..maxInstallationDays count as missing.
func InstallationETA(p domain.Project) *time.Time {
	if p.Kind != domain.KindSolar {
		return nil
	}
	start, ok := p.Solar.InstallationStartDate.Time()
	days := math.Trunc(p.Solar.InstallationDurationDays.Float())
	if !ok || days < 1 || days > maxInstallationDays {
		return nil
	}
	eta := start.AddDate(0, 0, int(days)).UTC()
	eta = time.Date(eta.Year(), eta.Month(), eta.Day(), 0, 0, 0, 0, time.UTC)
	return &eta
}

// BuildCard assembles the card for one project.
func BuildCard(p domain.Project, wattPerPanel float64, policy StepPolicy, now time.Time) domain.Card {
	card := domain.Card{
		Kind:      p.Kind,
		Title:     p.DisplayName(),
		StepScore: policy.Score(p, now),
		Timeline:  Timeline(p, now),
	}

	switch p.Kind {
	case domain.KindSolar:
		s := p.Solar
		card.Location = s.Location
		card.SizeKWp = s.SizeKWp.Float()
		card.EstimatedPanels = EstimatePanels(card.SizeKWp, wattPerPanel)
		card.InstallationETA = InstallationETA(p)
		card.Notes = s.Notes
	case domain.KindConstruction:
		c := p.Construction
		card.Description = c.Description
		card.Budget = c.Budget.Float()
		card.Currency = c.Currency
		if card.Currency == "" {
			card.Currency = defaultCurrency
		}
		card.Status = c.Status
	}
	return card
}

// BuildCards maps BuildCard over a list, never returning nil.
func BuildCards(projects []domain.Project, wattPerPanel float64, policy StepPolicy, now time.Time) []domain.Card {
	cards := make([]domain.Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, BuildCard(p, wattPerPanel, policy, now))
	}
	return cards
}
