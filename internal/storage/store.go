// Package storage persists the entities listed in §6 "Database entities":
// Campaign, Lead, CampaignStep, MonitoredLead, MonitoredCompany, Alert. The
// Store interface is what activities depend on; BunStore is the production
// Postgres implementation (grounded on the teacher's bun_store.go) and
// MemStore is a deterministic in-memory implementation for tests.
package storage

import (
	"context"
	"time"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// Store is the persistence surface used by C1 activities and workflows.
type Store interface {
	SaveCampaign(ctx context.Context, c domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)

	SaveLead(ctx context.Context, l domain.Lead) error
	GetLead(ctx context.Context, id string) (domain.Lead, error)
	ListLeadsByCampaign(ctx context.Context, campaignID string) ([]domain.Lead, error)

	AppendCampaignStep(ctx context.Context, s domain.CampaignStep) error
	ListCampaignSteps(ctx context.Context, campaignID, leadID string) ([]domain.CampaignStep, error)

	// SentConnectionRequestTimestamps returns the successful
	// sendConnectionRequest timestamps for a sender account, used by
	// ratelimit.Check for the rolling 24h/7d quota (§4.4, §9 Open Question 5).
	SentConnectionRequestTimestamps(ctx context.Context, senderAccountID string) ([]time.Time, error)
	RecordConnectionRequestSent(ctx context.Context, senderAccountID string, at time.Time) error

	SaveMonitoredLead(ctx context.Context, m domain.MonitoredLead) error
	GetMonitoredLead(ctx context.Context, id string) (domain.MonitoredLead, error)
	ListActiveMonitoredLeads(ctx context.Context) ([]domain.MonitoredLead, error)

	SaveMonitoredCompany(ctx context.Context, m domain.MonitoredCompany) error
	GetMonitoredCompany(ctx context.Context, id string) (domain.MonitoredCompany, error)
	ListActiveMonitoredCompanies(ctx context.Context) ([]domain.MonitoredCompany, error)

	AddAlert(ctx context.Context, a domain.Alert) error
	ListAlerts(ctx context.Context, leadID string) ([]domain.Alert, error)
}

// ErrNotFound is returned by MemStore's Get* lookups that miss. BunStore's
// Get* methods return the database driver's error (sql.ErrNoRows) instead.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return e.Entity + " not found: " + e.ID
}
