package domain

import "context"

const (
	DefaultWattPerPanel = 550
	DefaultLogo         = "assets/finsolar_logo.svg"
)

type PanelSpecs struct {
	WattPerPanel Number `json:"watt_per_panel"`
}

// Tenant is one investor account's data document. It is fetched whole for
// every view and never mutated.
type Tenant struct {
	Name       string      `json:"name"`
	Logo       string      `json:"logo"`
	PanelSpecs *PanelSpecs `json:"panel_specs,omitempty"`
	Projects   []Project   `json:"projects"`
	Sociality  []Project   `json:"sociality"`
}

// WattPerPanel falls back to DefaultWattPerPanel when unset or zero.
func (t *Tenant) WattPerPanel() float64 {
	if t.PanelSpecs == nil || t.PanelSpecs.WattPerPanel == 0 {
		return DefaultWattPerPanel
	}
	return t.PanelSpecs.WattPerPanel.Float()
}

// Combined returns projects followed by sociality in a fresh slice.
func (t *Tenant) Combined() []Project {
	out := make([]Project, 0, len(t.Projects)+len(t.Sociality))
	out = append(out, t.Projects...)
	out = append(out, t.Sociality...)
	return out
}

func (t *Tenant) LogoOrDefault() string {
	if t.Logo == "" {
		return DefaultLogo
	}
	return t.Logo
}

// Manifest names the tenant the dashboard serves.
type Manifest struct {
	DefaultTenant string   `json:"defaultTenant"`
	Tenants       []string `json:"tenants,omitempty"`
}

// DataSource reads the manifest and tenant documents.
type DataSource interface {
	Manifest(ctx context.Context) (*Manifest, error)
	Tenant(ctx context.Context, slug string) (*Tenant, error)
}
