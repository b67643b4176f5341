package domain

import "time"

// CampaignStatus is the campaign lifecycle state (§3).
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
	CampaignStopped   CampaignStatus = "stopped"
)

// IsTerminal reports whether the status ends the campaign's lifecycle.
func (s CampaignStatus) IsTerminal() bool {
	switch s {
	case CampaignCompleted, CampaignFailed, CampaignStopped:
		return true
	default:
		return false
	}
}

// SendingWindow is the campaign's timezone-aware sending window (§3, §4.4).
// StartTime/EndTime are "HH:MM" local strings.
type SendingWindow struct {
	StartTime   string
	EndTime     string
	Timezone    string
	LeadsPerDay int
}

// Campaign is the top-level outreach campaign entity (§3).
type Campaign struct {
	ID                    string
	OrganizationID        string
	Name                  string
	Description           string
	SenderAccountID       string
	ProspectListID        string
	Window                SendingWindow
	WorkflowDefinitionRef string
	Status                CampaignStatus
	IsDeleted             bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CanTransitionTo validates the status DAG from §3:
// draft -> active <-> paused -> (completed|stopped|failed).
func (c Campaign) CanTransitionTo(next CampaignStatus) bool {
	switch c.Status {
	case CampaignDraft:
		return next == CampaignActive
	case CampaignActive:
		switch next {
		case CampaignPaused, CampaignCompleted, CampaignStopped, CampaignFailed:
			return true
		}
	case CampaignPaused:
		switch next {
		case CampaignActive, CampaignCompleted, CampaignStopped, CampaignFailed:
			return true
		}
	}
	return false
}

// LeadStatus is the per-lead processing state (§3, §4.2).
type LeadStatus string

const (
	LeadQueued     LeadStatus = "Queued"
	LeadProcessing LeadStatus = "Processing"
	LeadFailed     LeadStatus = "Failed"
	LeadCompleted  LeadStatus = "Completed"
)

// Lead is one prospect within a campaign (§3).
type Lead struct {
	ID          string
	CampaignID  string
	ProfileURL  string
	FirstName   string
	LastName    string
	Company     string
	Status      LeadStatus
}

// CampaignStep is one append-only record of an executed node (§3, §4.2).
// StepIndex is the 0-based dequeue order, not DAG topological position
// (§9 Open Question 3 / §4.2).
type CampaignStep struct {
	ID         string
	CampaignID string
	LeadID     string
	StepIndex  int
	NodeType   ActionType
	Config     map[string]any
	Success    bool
	Result     map[string]any
	CreatedAt  time.Time
}
