package domain

import "time"

type Milestone string

const (
	MilestoneSiteSecured           Milestone = "site_secured"
	MilestonePPASecured            Milestone = "ppa_secured"
	MilestoneInstallationStart     Milestone = "installation_start"
	MilestoneInstallationProof     Milestone = "installation_proof"
	MilestoneInterconnectionFinish Milestone = "interconnection_finish"
)

// AllMilestones lists the solar milestones in timeline order.
func AllMilestones() []Milestone {
	return []Milestone{
		MilestoneSiteSecured,
		MilestonePPASecured,
		MilestoneInstallationStart,
		MilestoneInstallationProof,
		MilestoneInterconnectionFinish,
	}
}

func ValidMilestone(m string) bool {
	switch Milestone(m) {
	case MilestoneSiteSecured, MilestonePPASecured, MilestoneInstallationStart,
		MilestoneInstallationProof, MilestoneInterconnectionFinish:
		return true
	}
	return false
}

var milestoneTitles = map[Milestone]string{
	MilestoneSiteSecured:           "Sitio asegurado",
	MilestonePPASecured:            "PPA asegurado",
	MilestoneInstallationStart:     "Inicio instalación",
	MilestoneInstallationProof:     "Fe de hechos",
	MilestoneInterconnectionFinish: "Interconexión",
}

// Title is the label shown on a timeline step.
func (m Milestone) Title() string {
	if t, ok := milestoneTitles[m]; ok {
		return t
	}
	return string(m)
}

// Date returns the project's date for milestone m.
func (p *SolarProject) Date(m Milestone) Date {
	switch m {
	case MilestoneSiteSecured:
		return p.SiteSecuredDate
	case MilestonePPASecured:
		return p.PPASecuredDate
	case MilestoneInstallationStart:
		return p.InstallationStartDate
	case MilestoneInstallationProof:
		return p.InstallationProofDate
	case MilestoneInterconnectionFinish:
		return p.InterconnectionFinishDate
	}
	return Date{}
}

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepDone      StepStatus = "done"
	StepScheduled StepStatus = "scheduled"
)

// ComputeStepStatus classifies a timeline date. A value that is present but
// unparseable counts as done, matching how the badge has always rendered.
func ComputeStepStatus(d Date, now time.Time) StepStatus {
	switch {
	case !d.Set():
		return StepPending
	case d.After(now):
		return StepScheduled
	default:
		return StepDone
	}
}
