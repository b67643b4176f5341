package main

import (
	"context"
	"os"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/smilemakc/linkedin-outreach-engine/internal/activities"
	"github.com/smilemakc/linkedin-outreach-engine/internal/config"
	"github.com/smilemakc/linkedin-outreach-engine/internal/logger"
	"github.com/smilemakc/linkedin-outreach-engine/internal/objectstore"
	"github.com/smilemakc/linkedin-outreach-engine/internal/provider"
	"github.com/smilemakc/linkedin-outreach-engine/internal/storage"
	"github.com/smilemakc/linkedin-outreach-engine/internal/workflows"
)

func main() {
	cfg := config.Load()
	zlog := logger.Setup(cfg.LogLevel)
	zlog.Info().Str("task_queue", cfg.TaskQueue).Msg("starting linkedin outreach worker")

	store := storage.NewBunStore(cfg.DatabaseDSN)
	if err := store.InitSchema(context.Background()); err != nil {
		zlog.Error().Err(err).Msg("failed to initialize database schema")
		os.Exit(1)
	}

	objStore := objectstore.NewMemStore()

	var p provider.Provider = provider.NewFake()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger.NewTemporalAdapter(zlog),
	})
	if err != nil {
		zlog.Error().Err(err).Msg("failed to connect to temporal")
		os.Exit(1)
	}
	defer c.Close()

	w := worker.New(c, cfg.TaskQueue, worker.Options{})

	w.RegisterWorkflow(workflows.CampaignWorkflow)
	w.RegisterWorkflow(workflows.LeadWorkflow)
	w.RegisterWorkflow(workflows.LeadMonitorWorkflow)
	w.RegisterWorkflow(workflows.CompanyMonitorWorkflow)

	a := activities.New(p, store, objStore, cfg)
	w.RegisterActivity(a)

	if err := w.Run(worker.InterruptCh()); err != nil {
		zlog.Error().Err(err).Msg("worker stopped")
		os.Exit(1)
	}
}
