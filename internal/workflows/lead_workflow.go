package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/smilemakc/linkedin-outreach-engine/internal/activities"
	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
	domainerrors "github.com/smilemakc/linkedin-outreach-engine/internal/domain/errors"
	"github.com/smilemakc/linkedin-outreach-engine/internal/graph"
	"github.com/smilemakc/linkedin-outreach-engine/internal/template"
)

var outreachActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 5 * time.Minute,
	HeartbeatTimeout:    30 * time.Second,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    3,
	},
}

var persistenceActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 1 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    3,
	},
}

// LeadWorkflowInput is C2's input shape (§4.2).
type LeadWorkflowInput struct {
	LeadID          string
	CampaignID      string
	OrganizationID  string
	AccountID       string
	SenderAccountID string
	ProfileURL      string
	Definition      domain.WorkflowDefinition
	StartTime       string
	EndTime         string
	Timezone        string
}

// leadExecResult is the outcome fed into a node's outgoing conditional edges.
type leadExecResult struct {
	success bool
	data    map[string]any
}

// LeadWorkflow is C2: the per-lead graph walker, embedding C3's
// connection-request polling and C4's time-window/rate-limit gating.
func LeadWorkflow(ctx workflow.Context, in LeadWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	var a *activities.Activities

	persistCtx := workflow.WithActivityOptions(ctx, persistenceActivityOptions)

	if err := workflow.ExecuteActivity(persistCtx, a.UpdateLead, activities.UpdateLeadInput{
		LeadID: in.LeadID, Status: domain.LeadProcessing,
	}).Get(ctx, nil); err != nil {
		return fmt.Errorf("lead %s: mark Processing: %w", in.LeadID, err)
	}

	var verify activities.VerifyProviderAccountOutput
	if err := workflow.ExecuteActivity(persistCtx, a.VerifyProviderAccount, activities.VerifyProviderAccountInput{
		AccountID: in.AccountID,
	}).Get(ctx, &verify); err != nil || !verify.Connected {
		logger.Warn("lead workflow: provider account disconnected, failing lead", "leadId", in.LeadID)
		return failLead(ctx, persistCtx, a, in.LeadID)
	}

	var extracted activities.ExtractProfileIdentifierOutput
	if err := workflow.ExecuteActivity(persistCtx, a.ExtractProfileIdentifier, activities.ExtractProfileIdentifierInput{
		ProfileURL: in.ProfileURL,
	}).Get(ctx, &extracted); err != nil || !extracted.OK {
		logger.Warn("lead workflow: could not extract profile identifier, failing lead", "leadId", in.LeadID)
		return failLead(ctx, persistCtx, a, in.LeadID)
	}
	identifier := extracted.Identifier

	g := graph.Build(in.Definition)
	queue := g.Roots()
	stepIndex := 0

	for len(queue) > 0 {
		nodeID := queue[0]
		queue = queue[1:]
		node, ok := g.Nodes[nodeID]
		if !ok {
			continue
		}

		if failed, err := checkCampaignStatus(ctx, persistCtx, a, in.CampaignID); err != nil {
			return err
		} else if failed {
			return failLead(ctx, persistCtx, a, in.LeadID)
		}

		if err := gateOnTimeWindow(ctx, persistCtx, a, in.StartTime, in.EndTime, in.Timezone); err != nil {
			return err
		}

		result, recordStep, err := executeNode(ctx, a, in, identifier, node, g, nodeID)
		if err != nil {
			logger.Error("lead workflow: node execution failed, failing lead", "leadId", in.LeadID, "nodeId", nodeID, "error", err)
			return failLead(ctx, persistCtx, a, in.LeadID)
		}

		if recordStep {
			if err := workflow.ExecuteActivity(persistCtx, a.AddCampaignStep, activities.AddCampaignStepInput{
				CampaignID: in.CampaignID,
				LeadID:     in.LeadID,
				StepIndex:  stepIndex,
				NodeType:   node.ActionType,
				Config:     node.Config,
				Success:    result.success,
				Result:     result.data,
			}).Get(ctx, nil); err != nil {
				return fmt.Errorf("lead %s: record step %d: %w", in.LeadID, stepIndex, err)
			}
			stepIndex++
		}

		for _, e := range g.OutgoingEdges(nodeID) {
			follow := graph.ShouldFollow(e, result.success)
			if follow {
				delay := graph.DelayDuration(e.Data.DelayData)
				if delay > 0 {
					_ = workflow.Sleep(ctx, delay)
				}
			}
			if g.DecrementAndCheck(e.Target) {
				queue = append(queue, e.Target)
			}
		}
	}

	return workflow.ExecuteActivity(persistCtx, a.UpdateLead, activities.UpdateLeadInput{
		LeadID: in.LeadID, Status: domain.LeadCompleted,
	}).Get(ctx, nil)
}

func failLead(ctx workflow.Context, persistCtx workflow.Context, a *activities.Activities, leadID string) error {
	_ = workflow.ExecuteActivity(persistCtx, a.UpdateLead, activities.UpdateLeadInput{
		LeadID: leadID, Status: domain.LeadFailed,
	}).Get(ctx, nil)
	return nil
}

// checkCampaignStatus implements §4.5's checkCampaignStatus helper: paused
// campaigns make the lead wait (re-checking every 5 min); terminal/deleted
// campaigns make the caller fail the lead.
func checkCampaignStatus(ctx workflow.Context, persistCtx workflow.Context, a *activities.Activities, campaignID string) (shouldFail bool, err error) {
	for {
		var status activities.GetCampaignStatusOutput
		if err := workflow.ExecuteActivity(persistCtx, a.GetCampaignStatus, activities.GetCampaignStatusInput{
			CampaignID: campaignID,
		}).Get(ctx, &status); err != nil {
			return false, err
		}

		if status.IsDeleted || status.Status == domain.CampaignCompleted || status.Status == domain.CampaignFailed || status.Status == domain.CampaignStopped {
			return true, nil
		}
		if status.Status != domain.CampaignPaused {
			return false, nil
		}
		if err := workflow.Sleep(ctx, 5*time.Minute); err != nil {
			return false, err
		}
	}
}

// gateOnTimeWindow implements §4.4: sleep until the window opens, then
// re-check once to guard against boundary off-by-ones.
func gateOnTimeWindow(ctx workflow.Context, persistCtx workflow.Context, a *activities.Activities, start, end, tz string) error {
	for attempt := 0; attempt < 2; attempt++ {
		var check activities.CheckTimeWindowOutput
		if err := workflow.ExecuteActivity(persistCtx, a.CheckTimeWindow, activities.CheckTimeWindowInput{
			StartTime: start, EndTime: end, Timezone: tz,
		}).Get(ctx, &check); err != nil {
			return err
		}
		if check.InWindow {
			return nil
		}
		if err := workflow.Sleep(ctx, time.Duration(check.WaitMs)*time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}

// executeNode dispatches a single node's action (§4.2 step 4). recordStep
// reports whether a CampaignStep should be persisted (false for no-ops).
func executeNode(ctx workflow.Context, a *activities.Activities, in LeadWorkflowInput, identifier string, node domain.Node, g *graph.ExecutionGraph, nodeID string) (leadExecResult, bool, error) {
	if node.IsNoOp() {
		return leadExecResult{success: true}, false, nil
	}

	vars := map[string]any{
		"lead": map[string]any{
			"id":         in.LeadID,
			"profileUrl": in.ProfileURL,
		},
		"campaignId": in.CampaignID,
	}
	config := template.RenderConfig(node.Config, vars)

	outreachCtx := workflow.WithActivityOptions(ctx, outreachActivityOptions)
	input := activities.OutreachActionInput{
		AccountID:  in.AccountID,
		Identifier: identifier,
		Config:     config,
		CampaignID: in.CampaignID,
	}

	switch node.ActionType {
	case domain.ActionProfileVisit:
		return runSimple(ctx, outreachCtx, a.ProfileVisit, input)
	case domain.ActionLikePost:
		return runSimple(ctx, outreachCtx, a.LikePost, input)
	case domain.ActionCommentPost:
		return runSimple(ctx, outreachCtx, a.CommentPost, input)
	case domain.ActionSendFollowup:
		return runSimple(ctx, outreachCtx, a.SendFollowup, input)
	case domain.ActionWithdrawRequest:
		return runSimple(ctx, outreachCtx, a.WithdrawRequest, input)
	case domain.ActionSendInMail:
		return runSimple(ctx, outreachCtx, a.SendInMail, input)
	case domain.ActionSendConnectionRequest:
		horizon := time.Duration(-1) // sentinel: no rejected edge found, use the default horizon
		if e, ok := g.RejectedEdge(nodeID); ok {
			horizon = graph.DelayDuration(e.Data.DelayData)
		}
		result, err := connectionRequestFlow(ctx, a, in, identifier, config, horizon)
		return result, true, err
	default:
		return leadExecResult{}, false, domainerrors.NewProgrammingError(fmt.Sprintf("unknown action type %q", node.ActionType))
	}
}

func runSimple(ctx, activityCtx workflow.Context, activityFn any, input activities.OutreachActionInput) (leadExecResult, bool, error) {
	var result activities.ActivityResult
	err := workflow.ExecuteActivity(activityCtx, activityFn, input).Get(ctx, &result)
	if err != nil {
		return leadExecResult{success: false}, true, nil
	}
	return leadExecResult{success: result.Success, data: result.Data}, true, nil
}
