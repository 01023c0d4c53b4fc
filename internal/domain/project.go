package domain

import (
	"encoding/json"
	"fmt"
)

type ProjectKind string

const (
	KindSolar        ProjectKind = "solar"
	KindConstruction ProjectKind = "construction"
)

type Coordinates struct {
	Lat OptionalNumber `json:"lat"`
	Lng OptionalNumber `json:"lng"`
}

type SolarProject struct {
	Name                      string       `json:"name"`
	Location                  string       `json:"location"`
	SizeKWp                   Number       `json:"size_kwp"`
	Coordinates               *Coordinates `json:"coordinates,omitempty"`
	SiteSecuredDate           Date         `json:"site_secured_date"`
	PPASecuredDate            Date         `json:"ppa_secured_date"`
	InstallationStartDate     Date         `json:"installation_start_date"`
	InstallationProofDate     Date         `json:"installation_proof_date"`
	InterconnectionFinishDate Date         `json:"interconnection_finish_date"`
	InstallationDurationDays  Number       `json:"installation_duration_days"`
	Notes                     string       `json:"notes,omitempty"`
}

type ProjectStatus string

const (
	StatusActive     ProjectStatus = "active"
	StatusInProgress ProjectStatus = "in_progress"
	StatusPending    ProjectStatus = "pending"
	StatusPlanning   ProjectStatus = "planning"
)

type ConstructionProject struct {
	ProjectName string        `json:"project_name"`
	Description string        `json:"description"`
	Budget      Number        `json:"budget"`
	Currency    string        `json:"currency"`
	Status      ProjectStatus `json:"status"`
	StartDate   Date          `json:"start_date"`
	EndDate     Date          `json:"end_date"`
}

// IsActive counts both "active" and "in_progress" as running work.
func (c ConstructionProject) IsActive() bool {
	return c.Status == StatusActive || c.Status == StatusInProgress
}

// Project is a tagged union over the two document shapes. Exactly one of
// Solar or Construction is set, matching Kind.
type Project struct {
	Kind         ProjectKind
	Solar        *SolarProject
	Construction *ConstructionProject
}

func NewSolarProject(p SolarProject) Project {
	return Project{Kind: KindSolar, Solar: &p}
}

func NewConstructionProject(p ConstructionProject) Project {
	return Project{Kind: KindConstruction, Construction: &p}
}

// UnmarshalJSON picks the variant once, by key presence: a "budget" or
// "project_name" key marks a construction project.
func (p *Project) UnmarshalJSON(b []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return fmt.Errorf("project: %w", err)
	}

	_, hasBudget := keys["budget"]
	_, hasName := keys["project_name"]
	if hasBudget || hasName {
		var c ConstructionProject
		if err := json.Unmarshal(b, &c); err != nil {
			return fmt.Errorf("construction project: %w", err)
		}
		*p = NewConstructionProject(c)
		return nil
	}

	var s SolarProject
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("solar project: %w", err)
	}
	*p = NewSolarProject(s)
	return nil
}

func (p Project) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindConstruction:
		return json.Marshal(struct {
			Kind ProjectKind `json:"kind"`
			*ConstructionProject
		}{p.Kind, p.Construction})
	case KindSolar:
		return json.Marshal(struct {
			Kind ProjectKind `json:"kind"`
			*SolarProject
		}{p.Kind, p.Solar})
	default:
		return nil, fmt.Errorf("project: unknown kind %q", p.Kind)
	}
}

// SizeKWp is the solar capacity, zero for construction projects.
func (p Project) SizeKWp() float64 {
	if p.Kind == KindSolar && p.Solar != nil {
		return p.Solar.SizeKWp.Float()
	}
	return 0
}

// DisplayName returns the name field of whichever variant is set.
func (p Project) DisplayName() string {
	switch p.Kind {
	case KindSolar:
		return p.Solar.Name
	case KindConstruction:
		return p.Construction.ProjectName
	}
	return ""
}
