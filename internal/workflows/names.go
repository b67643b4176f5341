// Package workflows implements C2 (per-lead graph walker, embedding C3's
// connection-request polling and C4's gating), C5 (campaign orchestrator),
// and C6 (lead/company monitor loops), wired together with the signal and
// query names of C8. Structured the way the teacher's temporal reference
// (Heikkila-Pty-Ltd-cortex's CortexAgentWorkflow) shapes a Temporal workflow
// function: workflow.Context in, ActivityOptions per phase, signal channels
// for control, queries for read-only snapshots.
package workflows

// Signal and query names (§4.8, §6 "Signal/query names") — stable wire
// strings, never renamed without a migration plan.
const (
	SignalPauseCampaign = "pause-campaign"
	SignalResumeCampaign = "resume-campaign"
	SignalStopCampaign   = "stop-campaign"
	QueryCampaignStatus  = "get-campaign-status"

	SignalPauseLeadMonitoring  = "pause-lead-monitoring"
	SignalResumeLeadMonitoring = "resume-lead-monitoring"
	QueryLeadMonitoringStatus  = "get-monitoring-status"

	SignalPauseCompanyMonitoring  = "pause-company-monitoring"
	SignalResumeCompanyMonitoring = "resume-company-monitoring"
	QueryCompanyMonitoringStatus  = "get-company-monitoring-status"
)

// Workflow id helpers (§6 "Workflow ids", deterministic).
func CampaignWorkflowID(campaignID string) string {
	return "campaign-" + campaignID
}

func LeadWorkflowID(campaignID, leadID string) string {
	return "lead-" + campaignID + "-" + leadID
}

func LeadMonitorWorkflowID(monitoredLeadID string) string {
	return "lead-monitor-" + monitoredLeadID
}

func CompanyMonitorWorkflowID(monitoredCompanyID string) string {
	return "company-monitor-" + monitoredCompanyID
}

// CampaignStatusSnapshot is the answer to get-campaign-status (§4.5, §4.8).
type CampaignStatusSnapshot struct {
	IsPaused bool
}

// MonitoringStatusSnapshot is the answer to get-monitoring-status /
// get-company-monitoring-status (§4.6, §4.8).
type MonitoringStatusSnapshot struct {
	ID       string
	IsPaused bool
}
