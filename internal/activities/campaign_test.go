package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

func TestGetCampaignForDispatchResolvesDefinition(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveCampaign(context.Background(), domain.Campaign{
		ID: "c1", WorkflowDefinitionRef: "ref-1",
	}))
	require.NoError(t, a.ObjectStore.PutWorkflowDefinition(context.Background(), "ref-1", domain.WorkflowDefinition{
		Nodes: []domain.Node{{ID: "a", Class: domain.NodeClassAction, ActionType: domain.ActionProfileVisit}},
	}))

	out, err := a.GetCampaignForDispatch(context.Background(), GetCampaignForDispatchInput{CampaignID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.Campaign.ID)
	require.Len(t, out.Definition.Nodes, 1)
	assert.Equal(t, "a", out.Definition.Nodes[0].ID)
}

func TestListCampaignLeadsFiltersByCampaign(t *testing.T) {
	a, _, store := newTestActivities()
	require.NoError(t, store.SaveLead(context.Background(), domain.Lead{ID: "l1", CampaignID: "c1"}))
	require.NoError(t, store.SaveLead(context.Background(), domain.Lead{ID: "l2", CampaignID: "c2"}))

	out, err := a.ListCampaignLeads(context.Background(), ListCampaignLeadsInput{CampaignID: "c1"})
	require.NoError(t, err)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "l1", out.Leads[0].ID)
}
