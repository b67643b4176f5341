package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/smilemakc/linkedin-outreach-engine/internal/activities"
	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

var monitorActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 1 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    3,
	},
}

var aiActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 2 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    3,
	},
}

const monitorSleepChunk = 1 * time.Hour

// sleepInterruptible sleeps total in chunks no larger than monitorSleepChunk
// so a pause signal arriving mid-sleep is observed promptly (§4.6 step 3).
func sleepInterruptible(ctx workflow.Context, total time.Duration, isPaused *bool) error {
	remaining := total
	for remaining > 0 {
		chunk := monitorSleepChunk
		if remaining < chunk {
			chunk = remaining
		}
		if err := workflow.Sleep(ctx, chunk); err != nil {
			return err
		}
		remaining -= chunk
		if *isPaused {
			if err := workflow.Await(ctx, func() bool { return !*isPaused }); err != nil {
				return err
			}
		}
	}
	return nil
}

// LeadMonitorWorkflowInput is C6's input for the lead path. InitialFetchDone
// distinguishes the first run (initial fetch, §4.6 step 2) from every
// subsequent continueAsNew iteration (a monitoring-loop tick, §4.6 step 3).
type LeadMonitorWorkflowInput struct {
	MonitoredLeadID  string
	InitialFetchDone bool
	IsPaused         bool
}

func LeadMonitorWorkflow(ctx workflow.Context, in LeadMonitorWorkflowInput) error {
	var a *activities.Activities
	activityCtx := workflow.WithActivityOptions(ctx, monitorActivityOptions)
	aiCtx := workflow.WithActivityOptions(ctx, aiActivityOptions)

	isPaused := in.IsPaused
	pauseCh := workflow.GetSignalChannel(ctx, SignalPauseLeadMonitoring)
	resumeCh := workflow.GetSignalChannel(ctx, SignalResumeLeadMonitoring)
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
	if err := workflow.SetQueryHandler(ctx, QueryLeadMonitoringStatus, func() (MonitoringStatusSnapshot, error) {
		return MonitoringStatusSnapshot{ID: in.MonitoredLeadID, IsPaused: isPaused}, nil
	}); err != nil {
		return err
	}

	var entity domain.MonitoredLead
	if err := workflow.ExecuteActivity(activityCtx, a.GetReporterLeadByID, activities.GetReporterLeadByIDInput{
		ID: in.MonitoredLeadID,
	}).Get(ctx, &entity); err != nil {
		return err
	}

	if !in.InitialFetchDone {
		var fetched activities.FetchProfileOutput
		if err := workflow.ExecuteActivity(activityCtx, a.FetchLeadProfile, activities.FetchLeadProfileInput{
			ProfileURL: entity.ProfileURL,
		}).Get(ctx, &fetched); err != nil {
			return err
		}
		if err := workflow.ExecuteActivity(activityCtx, a.UpdateMonitoredLead, activities.UpdateMonitoredLeadInput{
			MonitoredLeadID: in.MonitoredLeadID, Fields: fetched.Fields, IsInitialFetch: true,
		}).Get(ctx, nil); err != nil {
			return err
		}
		for _, postID := range fetched.Posts {
			if err := workflow.ExecuteActivity(activityCtx, a.PushLeadPostID, activities.PushPostIDInput{
				EntityKind: "lead", EntityID: in.MonitoredLeadID, PostID: postID,
			}).Get(ctx, nil); err != nil {
				return err
			}
		}
	} else {
		period := monitorLeadPeriod(a)
		if err := sleepInterruptible(ctx, period, &isPaused); err != nil {
			return err
		}

		var fetched activities.FetchProfileOutput
		if err := workflow.ExecuteActivity(activityCtx, a.FetchLeadProfile, activities.FetchLeadProfileInput{
			ProfileURL: entity.ProfileURL,
		}).Get(ctx, &fetched); err != nil {
			return err
		}

		for _, postID := range fetched.Posts {
			if domain.ContainsPostID(entity.Last7PostsIDs, postID) {
				continue
			}
			var text string
			if err := workflow.ExecuteActivity(activityCtx, a.FetchPost, activities.FetchPostInput{PostID: postID}).Get(ctx, &text); err != nil {
				continue
			}
			var summary activities.SummarizePostOutput
			if err := workflow.ExecuteActivity(aiCtx, a.SummarizePost, activities.SummarizePostInput{Text: text}).Get(ctx, &summary); err != nil {
				continue
			}
			priority := domain.PriorityLow
			if summary.IsCritical {
				priority = domain.PriorityHigh
			}
			if err := workflow.ExecuteActivity(activityCtx, a.AddAlert, activities.AddAlertInput{
				LeadID: in.MonitoredLeadID, ReporterUserID: entity.ReporterUserID,
				Title: "New Post By Lead", Description: summary.Summary, Priority: priority,
			}).Get(ctx, nil); err != nil {
				return err
			}
			if err := workflow.ExecuteActivity(activityCtx, a.PushLeadPostID, activities.PushPostIDInput{
				EntityKind: "lead", EntityID: in.MonitoredLeadID, PostID: postID,
			}).Get(ctx, nil); err != nil {
				return err
			}
		}

		if err := workflow.ExecuteActivity(activityCtx, a.UpdateMonitoredLead, activities.UpdateMonitoredLeadInput{
			MonitoredLeadID: in.MonitoredLeadID, Fields: fetched.Fields, IsInitialFetch: false,
		}).Get(ctx, nil); err != nil {
			return err
		}
	}

	return workflow.NewContinueAsNewError(ctx, LeadMonitorWorkflow, LeadMonitorWorkflowInput{
		MonitoredLeadID:  in.MonitoredLeadID,
		InitialFetchDone: true,
		IsPaused:         isPaused,
	})
}

func monitorLeadPeriod(a *activities.Activities) time.Duration {
	if a != nil && a.Cfg != nil && a.Cfg.MonitorLeadPeriod > 0 {
		return a.Cfg.MonitorLeadPeriod
	}
	return 24 * time.Hour
}

func monitorCompanyPeriod(a *activities.Activities) time.Duration {
	if a != nil && a.Cfg != nil && a.Cfg.MonitorCompanyPeriod > 0 {
		return a.Cfg.MonitorCompanyPeriod
	}
	return 7 * 24 * time.Hour
}

// CompanyMonitorWorkflowInput is C6's input for the company path.
// continueAsNew is REQUIRED every iteration here (§4.6 step 3); as on the
// lead path, every run ends by continuing as new.
type CompanyMonitorWorkflowInput struct {
	MonitoredCompanyID string
	InitialFetchDone    bool
	IsPaused            bool
}

func CompanyMonitorWorkflow(ctx workflow.Context, in CompanyMonitorWorkflowInput) error {
	var a *activities.Activities
	activityCtx := workflow.WithActivityOptions(ctx, monitorActivityOptions)
	aiCtx := workflow.WithActivityOptions(ctx, aiActivityOptions)

	isPaused := in.IsPaused
	pauseCh := workflow.GetSignalChannel(ctx, SignalPauseCompanyMonitoring)
	resumeCh := workflow.GetSignalChannel(ctx, SignalResumeCompanyMonitoring)
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
	if err := workflow.SetQueryHandler(ctx, QueryCompanyMonitoringStatus, func() (MonitoringStatusSnapshot, error) {
		return MonitoringStatusSnapshot{ID: in.MonitoredCompanyID, IsPaused: isPaused}, nil
	}); err != nil {
		return err
	}

	var entity domain.MonitoredCompany
	if err := workflow.ExecuteActivity(activityCtx, a.GetReporterCompanyByID, activities.GetReporterCompanyByIDInput{
		ID: in.MonitoredCompanyID,
	}).Get(ctx, &entity); err != nil {
		return err
	}

	if !in.InitialFetchDone {
		var fetched activities.FetchProfileOutput
		if err := workflow.ExecuteActivity(activityCtx, a.FetchCompanyProfile, activities.FetchCompanyProfileInput{
			CompanyURL: entity.CompanyURL,
		}).Get(ctx, &fetched); err != nil {
			return err
		}
		if err := workflow.ExecuteActivity(activityCtx, a.UpdateMonitoredCompany, activities.UpdateMonitoredCompanyInput{
			MonitoredCompanyID: in.MonitoredCompanyID, Fields: fetched.Fields, IsInitialFetch: true,
		}).Get(ctx, nil); err != nil {
			return err
		}
		for _, postID := range fetched.Posts {
			if err := workflow.ExecuteActivity(activityCtx, a.PushCompanyPostID, activities.PushPostIDInput{
				EntityKind: "company", EntityID: in.MonitoredCompanyID, PostID: postID,
			}).Get(ctx, nil); err != nil {
				return err
			}
		}
	} else {
		period := monitorCompanyPeriod(a)
		if err := sleepInterruptible(ctx, period, &isPaused); err != nil {
			return err
		}

		var fetched activities.FetchProfileOutput
		if err := workflow.ExecuteActivity(activityCtx, a.FetchCompanyProfile, activities.FetchCompanyProfileInput{
			CompanyURL: entity.CompanyURL,
		}).Get(ctx, &fetched); err != nil {
			return err
		}

		for _, postID := range fetched.Posts {
			if domain.ContainsPostID(entity.Last7PostsIDs, postID) {
				continue
			}
			var text string
			if err := workflow.ExecuteActivity(activityCtx, a.FetchPost, activities.FetchPostInput{PostID: postID}).Get(ctx, &text); err != nil {
				continue
			}
			var summary activities.SummarizePostOutput
			if err := workflow.ExecuteActivity(aiCtx, a.SummarizePost, activities.SummarizePostInput{Text: text}).Get(ctx, &summary); err != nil {
				continue
			}
			priority := domain.PriorityLow
			if summary.IsCritical {
				priority = domain.PriorityHigh
			}
			if err := workflow.ExecuteActivity(activityCtx, a.AddAlert, activities.AddAlertInput{
				LeadID: in.MonitoredCompanyID, ReporterUserID: entity.ReporterUserID,
				Title: "New Post By Company", Description: summary.Summary, Priority: priority,
			}).Get(ctx, nil); err != nil {
				return err
			}
			if err := workflow.ExecuteActivity(activityCtx, a.PushCompanyPostID, activities.PushPostIDInput{
				EntityKind: "company", EntityID: in.MonitoredCompanyID, PostID: postID,
			}).Get(ctx, nil); err != nil {
				return err
			}
		}

		if err := workflow.ExecuteActivity(activityCtx, a.UpdateMonitoredCompany, activities.UpdateMonitoredCompanyInput{
			MonitoredCompanyID: in.MonitoredCompanyID, Fields: fetched.Fields, IsInitialFetch: false,
		}).Get(ctx, nil); err != nil {
			return err
		}
	}

	return workflow.NewContinueAsNewError(ctx, CompanyMonitorWorkflow, CompanyMonitorWorkflowInput{
		MonitoredCompanyID: in.MonitoredCompanyID,
		InitialFetchDone:   true,
		IsPaused:           isPaused,
	})
}
