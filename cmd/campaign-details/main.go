// Command campaign-details prints everything needed to build a sign-up form
// for a campaign: its ids, measurements, activities and groupings.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/givepenny/campaign-signup-helper/config"
	"github.com/givepenny/campaign-signup-helper/internal/cache"
	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/givepenny/campaign-signup-helper/pkg/campaign"
	"github.com/givepenny/campaign-signup-helper/pkg/logger"
)

func main() {
	slug := pflag.StringP("slug", "s", "", "slug of the campaign to describe")
	pflag.Parse()

	if *slug == "" {
		fmt.Fprintln(os.Stderr, "Usage: campaign-details --slug <campaign-slug>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*slug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(slug string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.App.Env,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	clients, err := api.NewClients(cfg, nil)
	if err != nil {
		return err
	}

	reference := cache.NewReferenceCache(clients.Discovery, clients.Activities, cfg.ReferenceCacheTTL())
	helper := campaign.NewHelper(clients.Campaigns, clients.Groupings, reference)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	details, err := helper.GetCampaignDetails(ctx, slug)
	if err != nil {
		logger.Error("Failed to get campaign details", zap.String("slug", slug), zap.Error(err))
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(details)
}
