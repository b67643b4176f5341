package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.temporal.io/sdk/client"

	"github.com/smilemakc/linkedin-outreach-engine/internal/config"
	"github.com/smilemakc/linkedin-outreach-engine/internal/logger"
	"github.com/smilemakc/linkedin-outreach-engine/internal/workflows"
)

func main() {
	var (
		action     = flag.String("action", "start-campaign", "start-campaign | pause-campaign | resume-campaign | stop-campaign | start-lead-monitor | start-company-monitor")
		campaignID = flag.String("campaign", "", "campaign id")
		leadID     = flag.String("lead", "", "monitored lead id")
		companyID  = flag.String("company", "", "monitored company id")
	)
	flag.Parse()

	cfg := config.Load()
	zlog := logger.Setup(cfg.LogLevel)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger.NewTemporalAdapter(zlog),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "dial temporal:", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx := context.Background()

	switch *action {
	case "start-campaign":
		requireFlag(*campaignID, "campaign")
		wo := client.StartWorkflowOptions{
			ID:        workflows.CampaignWorkflowID(*campaignID),
			TaskQueue: cfg.TaskQueue,
		}
		run, err := c.ExecuteWorkflow(ctx, wo, workflows.CampaignWorkflow, workflows.CampaignWorkflowInput{CampaignID: *campaignID})
		fatalIf(err)
		fmt.Println("started campaign workflow", run.GetID(), run.GetRunID())

	case "pause-campaign":
		requireFlag(*campaignID, "campaign")
		fatalIf(c.SignalWorkflow(ctx, workflows.CampaignWorkflowID(*campaignID), "", workflows.SignalPauseCampaign, nil))

	case "resume-campaign":
		requireFlag(*campaignID, "campaign")
		fatalIf(c.SignalWorkflow(ctx, workflows.CampaignWorkflowID(*campaignID), "", workflows.SignalResumeCampaign, nil))

	case "stop-campaign":
		requireFlag(*campaignID, "campaign")
		fatalIf(c.SignalWorkflow(ctx, workflows.CampaignWorkflowID(*campaignID), "", workflows.SignalStopCampaign, nil))

	case "start-lead-monitor":
		requireFlag(*leadID, "lead")
		wo := client.StartWorkflowOptions{
			ID:        workflows.LeadMonitorWorkflowID(*leadID),
			TaskQueue: cfg.TaskQueue,
		}
		run, err := c.ExecuteWorkflow(ctx, wo, workflows.LeadMonitorWorkflow, workflows.LeadMonitorWorkflowInput{MonitoredLeadID: *leadID})
		fatalIf(err)
		fmt.Println("started lead monitor workflow", run.GetID(), run.GetRunID())

	case "start-company-monitor":
		requireFlag(*companyID, "company")
		wo := client.StartWorkflowOptions{
			ID:        workflows.CompanyMonitorWorkflowID(*companyID),
			TaskQueue: cfg.TaskQueue,
		}
		run, err := c.ExecuteWorkflow(ctx, wo, workflows.CompanyMonitorWorkflow, workflows.CompanyMonitorWorkflowInput{MonitoredCompanyID: *companyID})
		fatalIf(err)
		fmt.Println("started company monitor workflow", run.GetID(), run.GetRunID())

	default:
		fmt.Fprintln(os.Stderr, "unknown action:", *action)
		os.Exit(1)
	}
}

func requireFlag(v, name string) {
	if v == "" {
		fmt.Fprintf(os.Stderr, "missing required flag: -%s\n", name)
		os.Exit(1)
	}
}

func fatalIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
