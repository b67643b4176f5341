package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/smilemakc/linkedin-outreach-engine/internal/activities"
	"github.com/smilemakc/linkedin-outreach-engine/internal/provider"
)

const defaultConnectionHorizon = 10 * 24 * time.Hour
const defaultProviderLimitRetryAfter = 24 * time.Hour

// connectionRequestFlow is C3: the connection-request send + polling state
// machine triggered by a send_connection_request node inside C2. horizon is
// the caller-derived polling horizon (§4.3 step 5: the rejected-branch edge
// delay, or defaultConnectionHorizon if the node has no rejected edge).
// horizon < 0 is the caller's sentinel for "no rejected edge was found"; a
// present edge with an explicit zero delay is a real zero horizon (§8
// invariant 10: horizon=0 times out immediately) and must not be defaulted.
func connectionRequestFlow(ctx workflow.Context, a *activities.Activities, in LeadWorkflowInput, identifier string, config map[string]any, horizon time.Duration) (leadExecResult, error) {
	persistCtx := workflow.WithActivityOptions(ctx, persistenceActivityOptions)
	outreachCtx := workflow.WithActivityOptions(ctx, outreachActivityOptions)

	// Step 1: rate-limit gate (§4.3 step 1, §4.4).
	for {
		var limits activities.CheckConnectionRequestLimitsOutput
		if err := workflow.ExecuteActivity(persistCtx, a.CheckConnectionRequestLimits, activities.CheckConnectionRequestLimitsInput{
			SenderAccountID: in.SenderAccountID,
		}).Get(ctx, &limits); err != nil {
			return leadExecResult{}, err
		}
		if limits.CanProceed {
			break
		}
		if limits.WaitUntilMs <= 0 {
			return leadExecResult{success: false, data: map[string]any{"error": map[string]any{"type": "connection_request_limit_exceeded"}}}, nil
		}
		if err := workflow.Sleep(ctx, time.Duration(limits.WaitUntilMs)*time.Millisecond); err != nil {
			return leadExecResult{}, err
		}
		// Re-check once; per §4.3 step 1, persistent denial after the wait fails closed.
		var recheck activities.CheckConnectionRequestLimitsOutput
		if err := workflow.ExecuteActivity(persistCtx, a.CheckConnectionRequestLimits, activities.CheckConnectionRequestLimitsInput{
			SenderAccountID: in.SenderAccountID,
		}).Get(ctx, &recheck); err != nil {
			return leadExecResult{}, err
		}
		if !recheck.CanProceed {
			return leadExecResult{success: false, data: map[string]any{"error": map[string]any{"type": "connection_request_limit_exceeded"}}}, nil
		}
		break
	}

	// Step 2: send, retrying indefinitely on provider_limit_reached (§4.3 step 2).
	var send activities.SendConnectionRequestOutput
	for {
		if err := workflow.ExecuteActivity(outreachCtx, a.SendConnectionRequest, activities.OutreachActionInput{
			AccountID:  in.AccountID,
			Identifier: identifier,
			Config:     config,
			CampaignID: in.CampaignID,
		}).Get(ctx, &send); err != nil {
			return leadExecResult{success: false}, nil
		}
		if send.LimitReached {
			retryAfter := defaultProviderLimitRetryAfter
			if send.RetryAfterHours > 0 {
				retryAfter = time.Duration(send.RetryAfterHours * float64(time.Hour))
			}
			if err := workflow.Sleep(ctx, retryAfter); err != nil {
				return leadExecResult{}, err
			}
			continue
		}
		break
	}

	if !send.Success && !send.AlreadyConnected {
		return leadExecResult{success: false, data: map[string]any{"message": send.Message}}, nil
	}

	if err := workflow.ExecuteActivity(persistCtx, a.RecordConnectionRequestSent, activities.RecordConnectionRequestSentInput{
		SenderAccountID: in.SenderAccountID,
	}).Get(ctx, nil); err != nil {
		return leadExecResult{}, err
	}

	// Step 3: already-connected short-circuits to success (§4.3 step 3).
	if send.AlreadyConnected {
		return leadExecResult{success: true, data: map[string]any{"alreadyConnected": true}}, nil
	}

	// Step 4: a missing invitation id is a distinguished failure (§4.3 step 4).
	if send.ProviderID == "" {
		return leadExecResult{success: false, data: map[string]any{"error": map[string]any{"type": "provider_id_missing"}}}, nil
	}

	if horizon < 0 {
		horizon = defaultConnectionHorizon
	}
	cadence := pollingCadence(horizon)

	// Step 6/7: poll until accepted/rejected/timeout (§4.3 steps 6-7).
	elapsed := time.Duration(0)
	for elapsed < horizon {
		if err := workflow.Sleep(ctx, cadence); err != nil {
			return leadExecResult{}, err
		}
		elapsed += cadence

		var check activities.CheckConnectionStatusOutput
		err := workflow.ExecuteActivity(persistCtx, a.CheckConnectionStatus, activities.CheckConnectionStatusInput{
			AccountID:  in.AccountID,
			Identifier: identifier,
			ProviderID: send.ProviderID,
			CampaignID: in.CampaignID,
		}).Get(ctx, &check)
		if err != nil {
			continue // transient provider hiccup, keep polling
		}

		switch check.Status {
		case provider.InvitationAccepted:
			return leadExecResult{success: true, data: map[string]any{
				"providerId":  send.ProviderID,
				"hoursWaited": elapsed.Hours(),
			}}, nil
		case provider.InvitationRejected:
			return leadExecResult{success: false, data: map[string]any{
				"providerId": send.ProviderID,
				"daysWaited": elapsed.Hours() / 24,
			}}, nil
		case provider.InvitationPending:
			continue
		}
	}

	return leadExecResult{success: false, data: map[string]any{"status": "timeout"}}, nil
}

// pollingCadence maps a polling horizon to a cadence tier (§4.3 step 5).
func pollingCadence(horizon time.Duration) time.Duration {
	switch {
	case horizon < 24*time.Hour:
		return 15 * time.Minute
	case horizon < 7*24*time.Hour:
		return 30 * time.Minute
	default:
		return time.Hour
	}
}
