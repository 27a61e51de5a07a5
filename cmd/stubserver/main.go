package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/givepenny/campaign-signup-helper/config"
	"github.com/givepenny/campaign-signup-helper/internal/stubserver"
	"github.com/givepenny/campaign-signup-helper/pkg/logger"
	"github.com/givepenny/campaign-signup-helper/pkg/tracing"
)

func main() {
	port := pflag.String("port", "", "port to listen on (overrides STUB_SERVER_PORT)")
	pflag.Parse()

	// The stub server is a development tool
	cfg, err := config.Load(config.WithDefault("APP_ENV", "development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.StubServer.Port = *port
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.App.Env,
		ServiceName: cfg.Observability.ServiceName + "-stub",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tracerShutdown, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.Observability.ServiceName + "-stub",
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.App.Env,
		Endpoint:       cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := stubserver.NewStore(stubserver.DefaultFixtures())
	srv := &http.Server{
		Addr:              "127.0.0.1:" + cfg.StubServer.Port,
		Handler:           stubserver.NewRouter(ctx, cfg, store),
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Stub server started",
			zap.String("addr", srv.Addr),
			zap.String("campaign_slug", stubserver.DemoCampaignSlug),
			zap.String("charity_id", stubserver.DemoCharityID),
			zap.String("campaign_id", stubserver.DemoCampaignID))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Stub server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down stub server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Stub server forced to shutdown", zap.Error(err))
	}

	logger.Info("Stub server exited")
}
