package workflows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/smilemakc/linkedin-outreach-engine/internal/activities"
	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

type CampaignWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
}

func TestCampaignWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignWorkflowTestSuite))
}

func (s *CampaignWorkflowTestSuite) TestDispatchesOneChildPerLeadAndCompletes() {
	env := s.NewTestWorkflowEnvironment()
	var a *activities.Activities

	env.OnActivity(a.GetCampaignForDispatch, mock.Anything, activities.GetCampaignForDispatchInput{
		CampaignID: "c1",
	}).Return(activities.GetCampaignForDispatchOutput{
		Campaign: domain.Campaign{
			ID:              "c1",
			SenderAccountID: "acct-1",
			Window:          domain.SendingWindow{StartTime: "00:00", EndTime: "23:59", Timezone: "UTC"},
		},
		Definition: domain.WorkflowDefinition{},
	}, nil)

	env.OnActivity(a.ListCampaignLeads, mock.Anything, activities.ListCampaignLeadsInput{
		CampaignID: "c1",
	}).Return(activities.ListCampaignLeadsOutput{
		Leads: []domain.Lead{{ID: "lead-1"}, {ID: "lead-2"}},
	}, nil)

	env.OnActivity(a.SetCampaignStatus, mock.Anything, activities.SetCampaignStatusInput{
		CampaignID: "c1", Status: domain.CampaignCompleted,
	}).Return(nil).Once()

	env.RegisterWorkflow(LeadWorkflow)
	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.AnythingOfType("workflows.LeadWorkflowInput")).Return(nil)

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{CampaignID: "c1"})

	s.True(env.IsWorkflowCompleted())
	s.NoError(env.GetWorkflowError())
}

func (s *CampaignWorkflowTestSuite) TestStopSignalEndsDispatchEarly() {
	env := s.NewTestWorkflowEnvironment()
	var a *activities.Activities

	env.OnActivity(a.GetCampaignForDispatch, mock.Anything, activities.GetCampaignForDispatchInput{
		CampaignID: "c1",
	}).Return(activities.GetCampaignForDispatchOutput{
		Campaign: domain.Campaign{ID: "c1", SenderAccountID: "acct-1"},
	}, nil)

	env.OnActivity(a.ListCampaignLeads, mock.Anything, activities.ListCampaignLeadsInput{
		CampaignID: "c1",
	}).Return(activities.ListCampaignLeadsOutput{
		Leads: []domain.Lead{{ID: "lead-1"}},
	}, nil)

	env.OnActivity(a.SetCampaignStatus, mock.Anything, activities.SetCampaignStatusInput{
		CampaignID: "c1", Status: domain.CampaignStopped,
	}).Return(nil).Once()

	env.RegisterWorkflow(LeadWorkflow)
	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.AnythingOfType("workflows.LeadWorkflowInput")).Return(nil)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(SignalStopCampaign, nil)
	}, time.Millisecond)

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{CampaignID: "c1"})

	s.True(env.IsWorkflowCompleted())
	s.NoError(env.GetWorkflowError())
}
