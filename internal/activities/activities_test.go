package activities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
	"github.com/smilemakc/linkedin-outreach-engine/internal/objectstore"
	"github.com/smilemakc/linkedin-outreach-engine/internal/provider"
	"github.com/smilemakc/linkedin-outreach-engine/internal/storage"
)

func newTestActivities() (*Activities, *provider.Fake, storage.Store) {
	p := provider.NewFake()
	store := storage.NewMemStore()
	return New(p, store, objectstore.NewMemStore(), nil), p, store
}

func TestVerifyProviderAccountConnected(t *testing.T) {
	a, p, _ := newTestActivities()
	p.Connected["acct-1"] = "provider-1"

	out, err := a.VerifyProviderAccount(context.Background(), VerifyProviderAccountInput{AccountID: "acct-1"})
	require.NoError(t, err)
	assert.True(t, out.Connected)
}

func TestExtractProfileIdentifierOK(t *testing.T) {
	a, _, _ := newTestActivities()
	out, err := a.ExtractProfileIdentifier(context.Background(), ExtractProfileIdentifierInput{ProfileURL: "https://linkedin.com/in/jane"})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "jane", out.Identifier)
}

func TestProfileVisitDelegatesToProvider(t *testing.T) {
	a, _, _ := newTestActivities()
	result, err := a.ProfileVisit(context.Background(), OutreachActionInput{AccountID: "acct-1", Identifier: "jane"})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestSendConnectionRequestAlreadyConnected(t *testing.T) {
	a, p, _ := newTestActivities()
	p.ConnectionResults["jane"] = []provider.ConnectionResult{{AlreadyConnected: true}}

	out, err := a.SendConnectionRequest(context.Background(), OutreachActionInput{AccountID: "acct-1", Identifier: "jane"})
	require.NoError(t, err)
	assert.True(t, out.AlreadyConnected)
}

func TestCheckConnectionStatusSwallowsUnscriptedAsPending(t *testing.T) {
	a, _, _ := newTestActivities()
	out, err := a.CheckConnectionStatus(context.Background(), CheckConnectionStatusInput{ProviderID: "inv-1"})
	require.NoError(t, err)
	assert.Equal(t, provider.InvitationPending, out.Status)
}

func TestCheckTimeWindowInWindow(t *testing.T) {
	a, _, _ := newTestActivities()
	out, err := a.CheckTimeWindow(context.Background(), CheckTimeWindowInput{StartTime: "00:00", EndTime: "23:59", Timezone: "UTC"})
	require.NoError(t, err)
	assert.True(t, out.InWindow)
}

func TestCheckConnectionRequestLimitsCanProceedWithNoHistory(t *testing.T) {
	a, _, _ := newTestActivities()
	out, err := a.CheckConnectionRequestLimits(context.Background(), CheckConnectionRequestLimitsInput{SenderAccountID: "acct-1"})
	require.NoError(t, err)
	assert.True(t, out.CanProceed)
}

func TestRecordConnectionRequestSentAdvancesQuota(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, a.RecordConnectionRequestSent(context.Background(), RecordConnectionRequestSentInput{SenderAccountID: "acct-1"}))

	history, err := store.SentConnectionRequestTimestamps(context.Background(), "acct-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.WithinDuration(t, time.Now(), history[0], time.Second)
}

func TestUpdateLeadPersistsStatus(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveLead(context.Background(), domain.Lead{ID: "lead-1", Status: domain.LeadQueued}))

	require.NoError(t, a.UpdateLead(context.Background(), UpdateLeadInput{LeadID: "lead-1", Status: domain.LeadCompleted}))

	lead, err := store.GetLead(context.Background(), "lead-1")
	require.NoError(t, err)
	assert.Equal(t, domain.LeadCompleted, lead.Status)
}

func TestAddCampaignStepAssignsIDAndTimestamp(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, a.AddCampaignStep(context.Background(), AddCampaignStepInput{
		CampaignID: "c1", LeadID: "lead-1", StepIndex: 0, NodeType: domain.ActionProfileVisit,
	}))

	steps, err := store.ListCampaignSteps(context.Background(), "c1", "lead-1")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.NotEmpty(t, steps[0].ID)
	assert.False(t, steps[0].CreatedAt.IsZero())
}

func TestGetCampaignStatusReportsDeleted(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveCampaign(context.Background(), domain.Campaign{ID: "c1", Status: domain.CampaignActive, IsDeleted: true}))

	out, err := a.GetCampaignStatus(context.Background(), GetCampaignStatusInput{CampaignID: "c1"})
	require.NoError(t, err)
	assert.True(t, out.IsDeleted)
}

func TestUpdateMonitoredLeadInitialFetchSkipsAlerts(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveMonitoredLead(context.Background(), domain.MonitoredLead{ID: "m1", ReporterUserID: "r1"}))

	out, err := a.UpdateMonitoredLead(context.Background(), UpdateMonitoredLeadInput{
		MonitoredLeadID: "m1", Fields: map[string]any{"full_name": "Jane Doe"}, IsInitialFetch: true,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)

	updated, err := store.GetMonitoredLead(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.FullName)
}

func TestUpdateMonitoredLeadEmitsAlertOnChange(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveMonitoredLead(context.Background(), domain.MonitoredLead{ID: "m1", ReporterUserID: "r1", FullName: "Jane Doe"}))

	out, err := a.UpdateMonitoredLead(context.Background(), UpdateMonitoredLeadInput{
		MonitoredLeadID: "m1", Fields: map[string]any{"full_name": "Jane Smith"}, IsInitialFetch: false,
	})
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "Full Name Changed", out.Alerts[0].Title)

	alerts, err := store.ListAlerts(context.Background(), "m1")
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestUpdateMonitoredLeadNoChangeProducesNoAlerts(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveMonitoredLead(context.Background(), domain.MonitoredLead{ID: "m1", ReporterUserID: "r1", FullName: "Jane Doe"}))

	out, err := a.UpdateMonitoredLead(context.Background(), UpdateMonitoredLeadInput{
		MonitoredLeadID: "m1", Fields: map[string]any{"full_name": "Jane Doe"}, IsInitialFetch: false,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
}

func TestUpdateMonitoredCompanyRotatesCounterAndAlerts(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveMonitoredCompany(context.Background(), domain.MonitoredCompany{
		ID: "co-1", ReporterUserID: "r1", EmployeeCountCurrent: 100,
	}))

	out, err := a.UpdateMonitoredCompany(context.Background(), UpdateMonitoredCompanyInput{
		MonitoredCompanyID: "co-1", Fields: map[string]any{"employee_count_current": 150}, IsInitialFetch: false,
	})
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "Employee Count Changed", out.Alerts[0].Title)

	updated, err := store.GetMonitoredCompany(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Equal(t, 150, updated.EmployeeCountCurrent)
	assert.Equal(t, 100, updated.EmployeeCountPrevious)
}

func TestPushLeadPostIDPersists(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveMonitoredLead(context.Background(), domain.MonitoredLead{ID: "m1"}))

	require.NoError(t, a.PushLeadPostID(context.Background(), PushPostIDInput{EntityKind: "lead", EntityID: "m1", PostID: "post-1"}))

	ml, err := store.GetMonitoredLead(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, ml.Last7PostsIDs)
}

func TestSummarizePostWithoutOpenAIClientFails(t *testing.T) {
	a, _, _ := newTestActivities()
	_, err := a.SummarizePost(context.Background(), SummarizePostInput{Text: "post text"})
	assert.Error(t, err)
}
