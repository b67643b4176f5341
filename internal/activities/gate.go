package activities

import (
	"context"
	"time"

	"github.com/smilemakc/linkedin-outreach-engine/internal/ratelimit"
)

// CheckTimeWindowInput / Output wrap checkTimeWindow (§4.1, §4.4).
type CheckTimeWindowInput struct {
	StartTime string
	EndTime   string
	Timezone  string
}

type CheckTimeWindowOutput struct {
	InWindow bool
	WaitMs   int64
}

func (a *Activities) CheckTimeWindow(ctx context.Context, in CheckTimeWindowInput) (CheckTimeWindowOutput, error) {
	check, err := ratelimit.CheckTimeWindow(in.StartTime, in.EndTime, in.Timezone, time.Now())
	if err != nil {
		return CheckTimeWindowOutput{}, err
	}
	return CheckTimeWindowOutput{InWindow: check.InWindow, WaitMs: check.WaitMs}, nil
}

// CheckConnectionRequestLimitsInput / Output wrap
// checkConnectionRequestLimits (§4.1, §4.4). The limiter is keyed per sender
// account (§9 Open Question 5).
type CheckConnectionRequestLimitsInput struct {
	SenderAccountID string
}

type CheckConnectionRequestLimitsOutput struct {
	CanProceed  bool
	WaitUntilMs int64
}

func (a *Activities) CheckConnectionRequestLimits(ctx context.Context, in CheckConnectionRequestLimitsInput) (CheckConnectionRequestLimitsOutput, error) {
	history, err := a.Store.SentConnectionRequestTimestamps(ctx, in.SenderAccountID)
	if err != nil {
		return CheckConnectionRequestLimitsOutput{}, err
	}

	now := time.Now()
	canProceed, waitUntil := ratelimit.Check(ratelimit.DefaultQuota(), history, now)
	if canProceed {
		return CheckConnectionRequestLimitsOutput{CanProceed: true}, nil
	}
	waitMs := waitUntil.Sub(now).Milliseconds()
	if waitMs < 0 {
		waitMs = 0
	}
	return CheckConnectionRequestLimitsOutput{CanProceed: false, WaitUntilMs: waitMs}, nil
}

// RecordConnectionRequestSentInput records a successful send against the
// rolling quota, so subsequent CheckConnectionRequestLimits calls see it.
type RecordConnectionRequestSentInput struct {
	SenderAccountID string
}

func (a *Activities) RecordConnectionRequestSent(ctx context.Context, in RecordConnectionRequestSentInput) error {
	return a.Store.RecordConnectionRequestSent(ctx, in.SenderAccountID, time.Now())
}
