package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/smilemakc/linkedin-outreach-engine/internal/activities"
	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

var campaignActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 1 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    3,
	},
}

// CampaignWorkflowInput is C5's input (§4.5).
type CampaignWorkflowInput struct {
	CampaignID string
}

// CampaignWorkflow is C5: the parent orchestrator. It enumerates the
// prospect list and staggers per-lead child workflows under
// maxConcurrentLeads, propagating pause/resume/stop to itself.
func CampaignWorkflow(ctx workflow.Context, in CampaignWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	var a *activities.Activities
	activityCtx := workflow.WithActivityOptions(ctx, campaignActivityOptions)

	isPaused := false
	stopped := false

	pauseCh := workflow.GetSignalChannel(ctx, SignalPauseCampaign)
	resumeCh := workflow.GetSignalChannel(ctx, SignalResumeCampaign)
	stopCh := workflow.GetSignalChannel(ctx, SignalStopCampaign)

	workflow.Go(ctx, func(ctx workflow.Context) {
		for {
			pauseCh.Receive(ctx, nil)
			isPaused = true
		}
	})
	workflow.Go(ctx, func(ctx workflow.Context) {
		for {
			resumeCh.Receive(ctx, nil)
			isPaused = false
		}
	})
	workflow.Go(ctx, func(ctx workflow.Context) {
		stopCh.Receive(ctx, nil)
		stopped = true
	})

	if err := workflow.SetQueryHandler(ctx, QueryCampaignStatus, func() (CampaignStatusSnapshot, error) {
		return CampaignStatusSnapshot{IsPaused: isPaused}, nil
	}); err != nil {
		return err
	}

	var dispatch activities.GetCampaignForDispatchOutput
	if err := workflow.ExecuteActivity(activityCtx, a.GetCampaignForDispatch, activities.GetCampaignForDispatchInput{
		CampaignID: in.CampaignID,
	}).Get(ctx, &dispatch); err != nil {
		return fmt.Errorf("campaign %s: load for dispatch: %w", in.CampaignID, err)
	}

	var leadsOut activities.ListCampaignLeadsOutput
	if err := workflow.ExecuteActivity(activityCtx, a.ListCampaignLeads, activities.ListCampaignLeadsInput{
		CampaignID: in.CampaignID,
	}).Get(ctx, &leadsOut); err != nil {
		return fmt.Errorf("campaign %s: list leads: %w", in.CampaignID, err)
	}

	maxConcurrent := 10
	leadProcessingDelay := 30 * time.Second
	if a != nil && a.Cfg != nil {
		if a.Cfg.DefaultMaxConcurrentLeads > 0 {
			maxConcurrent = a.Cfg.DefaultMaxConcurrentLeads
		}
		if a.Cfg.DefaultLeadProcessingDelay > 0 {
			leadProcessingDelay = a.Cfg.DefaultLeadProcessingDelay
		}
	}

	inFlight := 0
	done := workflow.NewChannel(ctx)

	for i := 0; i < len(leadsOut.Leads); i++ {
		if stopped {
			break
		}
		if err := workflow.Await(ctx, func() bool { return !isPaused && inFlight < maxConcurrent }); err != nil {
			return err
		}
		if stopped {
			break
		}

		lead := leadsOut.Leads[i]
		cwo := workflow.ChildWorkflowOptions{
			WorkflowID: LeadWorkflowID(in.CampaignID, lead.ID),
		}
		childCtx := workflow.WithChildOptions(ctx, cwo)
		future := workflow.ExecuteChildWorkflow(childCtx, LeadWorkflow, LeadWorkflowInput{
			LeadID:          lead.ID,
			CampaignID:      in.CampaignID,
			OrganizationID:  dispatch.Campaign.OrganizationID,
			AccountID:       dispatch.Campaign.SenderAccountID,
			SenderAccountID: dispatch.Campaign.SenderAccountID,
			ProfileURL:      lead.ProfileURL,
			Definition:      dispatch.Definition,
			StartTime:       dispatch.Campaign.Window.StartTime,
			EndTime:         dispatch.Campaign.Window.EndTime,
			Timezone:        dispatch.Campaign.Window.Timezone,
		})
		inFlight++

		workflow.Go(ctx, func(ctx workflow.Context) {
			if err := future.Get(ctx, nil); err != nil {
				logger.Warn("campaign workflow: lead child failed", "campaignId", in.CampaignID, "leadId", lead.ID, "error", err)
			}
			done.Send(ctx, nil)
		})

		if i < len(leadsOut.Leads)-1 {
			if err := workflow.Sleep(ctx, leadProcessingDelay); err != nil {
				return err
			}
		}

		for inFlight >= maxConcurrent {
			var sig any
			done.Receive(ctx, &sig)
			inFlight--
		}
	}

	for inFlight > 0 {
		var sig any
		done.Receive(ctx, &sig)
		inFlight--
	}

	finalStatus := domain.CampaignCompleted
	if stopped {
		finalStatus = domain.CampaignStopped
	}
	return workflow.ExecuteActivity(activityCtx, a.SetCampaignStatus, activities.SetCampaignStatusInput{
		CampaignID: in.CampaignID,
		Status:     finalStatus,
	}).Get(ctx, nil)
}
