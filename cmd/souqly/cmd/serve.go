package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/souqly/souqly/internal/api"
	"github.com/souqly/souqly/internal/config"
	"github.com/souqly/souqly/internal/engine"
	"github.com/souqly/souqly/internal/feed"
	"github.com/souqly/souqly/internal/kv"
	"github.com/souqly/souqly/internal/notify"
	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/internal/telemetry"
	"github.com/souqly/souqly/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cliLog := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.OTLPEndpoint != "",
		SampleRatio:    1,
	})
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	var sessionKV kv.Store
	if cfg.Redis.URL != "" {
		redisKV, err := kv.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer redisKV.Close()
		sessionKV = redisKV
		cliLog.Info("session store: redis")
	} else {
		sessionKV = kv.NewMemoryStore()
		cliLog.Info("session store: in-memory")
	}

	sessions := session.NewManager(sessionKV, cfg.Session.TTL, appLog)

	var feedClient feed.Client
	if cfg.Feed.BaseURL != "" {
		limiter := feed.NewRateLimiter(
			cfg.Feed.RateLimit.PerSecond,
			cfg.Feed.RateLimit.Burst,
			cfg.Feed.RateLimit.DailyLimit,
		)
		feedClient = feed.NewHTTPClient(
			cfg.Feed.BaseURL,
			cfg.Feed.APIKey,
			feed.WithRateLimiter(limiter),
		)
	} else {
		// No feed configured; serve the bundled static catalog.
		static, err := feed.NewStaticClient()
		if err != nil {
			return fmt.Errorf("loading static feed: %w", err)
		}
		feedClient = static
		cliLog.Warn("no feed base_url configured, using static catalog")
	}

	paginator := feed.NewPaginator(
		feedClient,
		cfg.Feed.Source,
		feed.WithPageSize(cfg.Feed.PageSize),
		feed.WithMaxPages(cfg.Feed.MaxPagesPerCycle),
		feed.WithPaginatorLogger(cliLog),
	)

	var notifier notify.Notifier
	if cfg.Alerts.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Alerts.WebhookURL)
	} else {
		notifier = notify.NewNoOpNotifier(appLog)
	}

	eng := engine.NewEngine(
		st,
		feedClient,
		notifier,
		engine.WithLogger(appLog),
		engine.WithPaginator(paginator),
		engine.WithSource(cfg.Feed.Source),
		engine.WithAlertCooldown(cfg.Alerts.Cooldown),
	)

	sched, err := engine.NewScheduler(
		eng,
		cfg.Schedule.IngestionInterval,
		cfg.Schedule.RescoreInterval,
		appLog,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	e := api.NewRouter(api.Deps{
		Config:   cfg,
		Store:    st,
		Sessions: sessions,
		Ingester: eng,
		Rescorer: eng,
		Logger:   appLog,
		Version:  Version,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	cliLog.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cliLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cliLog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	<-sched.Stop().Done()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		cliLog.Warn("shutting down tracing", "err", err)
	}

	cliLog.Info("server stopped")
	return nil
}

func parseLogLevel(level string) charmlog.Level {
	switch level {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
