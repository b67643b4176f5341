package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

func TestMemStoreCampaignRoundTrip(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.SaveCampaign(ctx, domain.Campaign{ID: "c1", Status: domain.CampaignActive}))
	got, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status)
}

func TestMemStoreGetCampaignNotFound(t *testing.T) {
	s := NewMemStore()
	_, err := s.GetCampaign(context.Background(), "missing")
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestMemStoreListLeadsByCampaignSortedDeterministic(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	require.NoError(t, s.SaveLead(ctx, domain.Lead{ID: "lead-b", CampaignID: "c1"}))
	require.NoError(t, s.SaveLead(ctx, domain.Lead{ID: "lead-a", CampaignID: "c1"}))
	require.NoError(t, s.SaveLead(ctx, domain.Lead{ID: "lead-other", CampaignID: "c2"}))

	leads, err := s.ListLeadsByCampaign(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "lead-a", leads[0].ID)
	assert.Equal(t, "lead-b", leads[1].ID)
}

func TestMemStoreAppendCampaignStepPreservesStepIndexOrder(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	require.NoError(t, s.AppendCampaignStep(ctx, domain.CampaignStep{CampaignID: "c1", LeadID: "l1", StepIndex: 1}))
	require.NoError(t, s.AppendCampaignStep(ctx, domain.CampaignStep{CampaignID: "c1", LeadID: "l1", StepIndex: 0}))

	steps, err := s.ListCampaignSteps(ctx, "c1", "l1")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].StepIndex)
	assert.Equal(t, 1, steps[1].StepIndex)
}

func TestMemStoreSentConnectionRequestTimestampsAccumulate(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.RecordConnectionRequestSent(ctx, "acct-1", now))
	require.NoError(t, s.RecordConnectionRequestSent(ctx, "acct-1", now.Add(time.Hour)))

	history, err := s.SentConnectionRequestTimestamps(ctx, "acct-1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestMemStoreListActiveMonitoredLeadsExcludesPaused(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	require.NoError(t, s.SaveMonitoredLead(ctx, domain.MonitoredLead{ID: "m1", IsPaused: false}))
	require.NoError(t, s.SaveMonitoredLead(ctx, domain.MonitoredLead{ID: "m2", IsPaused: true}))

	active, err := s.ListActiveMonitoredLeads(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "m1", active[0].ID)
}

func TestMemStoreListAlertsNewestFirst(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	require.NoError(t, s.AddAlert(ctx, domain.Alert{ID: "a1", LeadID: "lead-1", CreatedAt: older}))
	require.NoError(t, s.AddAlert(ctx, domain.Alert{ID: "a2", LeadID: "lead-1", CreatedAt: newer}))

	alerts, err := s.ListAlerts(ctx, "lead-1")
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "a2", alerts[0].ID)
}
