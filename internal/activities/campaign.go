package activities

import (
	"context"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// GetCampaignForDispatchInput/Output resolves everything C5 needs to start
// dispatching a campaign's leads: the campaign row itself and its parsed
// workflow definition (§6 "Object storage": "the graph walker receives the
// already-parsed WorkflowDefinition").
type GetCampaignForDispatchInput struct {
	CampaignID string
}

type GetCampaignForDispatchOutput struct {
	Campaign   domain.Campaign
	Definition domain.WorkflowDefinition
}

func (a *Activities) GetCampaignForDispatch(ctx context.Context, in GetCampaignForDispatchInput) (GetCampaignForDispatchOutput, error) {
	c, err := a.Store.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return GetCampaignForDispatchOutput{}, err
	}
	def, err := a.ObjectStore.GetWorkflowDefinition(ctx, c.WorkflowDefinitionRef)
	if err != nil {
		return GetCampaignForDispatchOutput{}, err
	}
	return GetCampaignForDispatchOutput{Campaign: c, Definition: def}, nil
}

// ListCampaignLeadsInput/Output enumerates the prospect list for C5's
// dispatch loop.
type ListCampaignLeadsInput struct {
	CampaignID string
}

type ListCampaignLeadsOutput struct {
	Leads []domain.Lead
}

func (a *Activities) ListCampaignLeads(ctx context.Context, in ListCampaignLeadsInput) (ListCampaignLeadsOutput, error) {
	leads, err := a.Store.ListLeadsByCampaign(ctx, in.CampaignID)
	if err != nil {
		return ListCampaignLeadsOutput{}, err
	}
	return ListCampaignLeadsOutput{Leads: leads}, nil
}
