package domain

import "time"

type Schema string

const (
	SchemaSolar        Schema = "solar"
	SchemaConstruction Schema = "construction"
)

type SolarKPIs struct {
	TotalCapacityKWp float64 `json:"total_capacity_kwp"`
	TotalProjects    int     `json:"total_projects"`
	EstimatedPanels  int     `json:"estimated_panels"`
	AverageProgress  int     `json:"average_progress"`
}

type ConstructionKPIs struct {
	TotalBudget    float64 `json:"total_budget"`
	TotalProjects  int     `json:"total_projects"`
	ActiveProjects int     `json:"active_projects"`
}

// Summary carries exactly one KPI block, selected by Schema.
type Summary struct {
	Schema       Schema            `json:"schema"`
	Policy       string            `json:"policy,omitempty"`
	Solar        *SolarKPIs        `json:"solar,omitempty"`
	Construction *ConstructionKPIs `json:"construction,omitempty"`
}

type TimelineStep struct {
	Key    string     `json:"key"`
	Title  string     `json:"title"`
	Date   Date       `json:"date"`
	Status StepStatus `json:"status"`
}

type Card struct {
	Kind            ProjectKind    `json:"kind"`
	Title           string         `json:"title"`
	Location        string         `json:"location,omitempty"`
	SizeKWp         float64        `json:"size_kwp,omitempty"`
	EstimatedPanels int            `json:"estimated_panels,omitempty"`
	StepScore       int            `json:"step_score"`
	Description     string         `json:"description,omitempty"`
	Budget          float64        `json:"budget,omitempty"`
	Currency        string         `json:"currency,omitempty"`
	Status          ProjectStatus  `json:"status,omitempty"`
	Timeline        []TimelineStep `json:"timeline"`
	InstallationETA *time.Time     `json:"installation_eta,omitempty"`
	Notes           string         `json:"notes,omitempty"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Marker struct {
	Position LatLng  `json:"position"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	SizeKWp  float64 `json:"size_kwp"`
}

type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// MapView is the map widget's state for one render. It is built fresh per
// view and handed to the renderer rather than kept in package state.
type MapView struct {
	Center  LatLng   `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
	Bounds  *Bounds  `json:"bounds,omitempty"`
}

type TenantInfo struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Dashboard is everything a single page view needs.
type Dashboard struct {
	Tenant      TenantInfo `json:"tenant"`
	Summary     Summary    `json:"summary"`
	Projects    []Card     `json:"projects"`
	Sociality   []Card     `json:"sociality"`
	Map         MapView    `json:"map"`
	GeneratedAt time.Time  `json:"generated_at"`
}
