package portfolio

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/finsolar/investordash/internal/domain"
	"gopkg.in/yaml.v3"
)

type ScoreMode string

const (
	// ModeThreshold awards the weight of the furthest milestone reached.
	ModeThreshold ScoreMode = "threshold"
	// ModeProportional awards the share of milestones reached.
	ModeProportional ScoreMode = "proportional"
)

const (
	PolicyCoarse       = "coarse"
	PolicyProportional = "proportional"
)

var (
	ErrUnknownPolicy = errors.New("unknown scoring policy")
	ErrInvalidPolicy = errors.New("invalid scoring policy")
)

// StepPolicy decides how a project's milestone dates become a 0..100 score.
type StepPolicy struct {
	Name        string             `yaml:"name" json:"name"`
	Milestones  []domain.Milestone `yaml:"milestones" json:"milestones"`
	Mode        ScoreMode          `yaml:"mode" json:"mode"`
	RequirePast bool               `yaml:"require_past" json:"require_past"`
}

// CoarsePolicy scores 25/50/75/100 for site, PPA, installation start and
// interconnection. Installation proof is not scored and future dates do
// not count.
func CoarsePolicy() StepPolicy {
	return StepPolicy{
		Name: PolicyCoarse,
		Milestones: []domain.Milestone{
			domain.MilestoneSiteSecured,
			domain.MilestonePPASecured,
			domain.MilestoneInstallationStart,
			domain.MilestoneInterconnectionFinish,
		},
		Mode:        ModeThreshold,
		RequirePast: true,
	}
}

// ProportionalPolicy scores the fraction of all five milestone dates that are
// present, regardless of whether they lie in the future.
func ProportionalPolicy() StepPolicy {
	return StepPolicy{
		Name:        PolicyProportional,
		Milestones:  domain.AllMilestones(),
		Mode:        ModeProportional,
		RequirePast: false,
	}
}

// PolicyByName resolves a preset.
func PolicyByName(name string) (StepPolicy, error) {
	switch name {
	case PolicyCoarse:
		return CoarsePolicy(), nil
	case PolicyProportional:
		return ProportionalPolicy(), nil
	default:
		return StepPolicy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

func (sp StepPolicy) Validate() error {
	if sp.Mode != ModeThreshold && sp.Mode != ModeProportional {
		return fmt.Errorf("%w: mode %q", ErrInvalidPolicy, sp.Mode)
	}
	if len(sp.Milestones) == 0 {
		return fmt.Errorf("%w: no milestones", ErrInvalidPolicy)
	}
	seen := make(map[domain.Milestone]bool, len(sp.Milestones))
	for _, m := range sp.Milestones {
		if !domain.ValidMilestone(string(m)) {
			return fmt.Errorf("%w: unknown milestone %q", ErrInvalidPolicy, m)
		}
		if seen[m] {
			return fmt.Errorf("%w: duplicate milestone %q", ErrInvalidPolicy, m)
		}
		seen[m] = true
	}
	return nil
}

// LoadPolicy reads a policy from a YAML file and validates it.
func LoadPolicy(path string) (StepPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StepPolicy{}, fmt.Errorf("read policy file: %w", err)
	}
	return ParsePolicy(data)
}

func ParsePolicy(data []byte) (StepPolicy, error) {
	var sp StepPolicy
	if err := yaml.Unmarshal(data, &sp); err != nil {
		return StepPolicy{}, fmt.Errorf("parse policy file: %w", err)
	}
	if sp.Name == "" {
		sp.Name = "custom"
	}
	if err := sp.Validate(); err != nil {
		return StepPolicy{}, err
	}
	return sp, nil
}

func (sp StepPolicy) reached(d domain.Date, now time.Time) bool {
	if sp.RequirePast {
		return d.ReachedBy(now)
	}
	_, ok := d.Time()
	return ok
}

// Score returns the project's step score in 0..100. Construction projects
// have no solar milestones and score 0.
func (sp StepPolicy) Score(p domain.Project, now time.Time) int {
	if p.Kind != domain.KindSolar || p.Solar == nil || len(sp.Milestones) == 0 {
		return 0
	}

	n := len(sp.Milestones)
	switch sp.Mode {
	case ModeThreshold:
		score := 0
		for i, m := range sp.Milestones {
			if sp.reached(p.Solar.Date(m), now) {
				score = round(100 * float64(i+1) / float64(n))
			}
		}
		return score
	case ModeProportional:
		count := 0
		for _, m := range sp.Milestones {
			if sp.reached(p.Solar.Date(m), now) {
				count++
			}
		}
		return round(100 * float64(count) / float64(n))
	}
	return 0
}
