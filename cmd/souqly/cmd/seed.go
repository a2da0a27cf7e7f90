package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/souqly/souqly/internal/config"
	"github.com/souqly/souqly/internal/engine"
	"github.com/souqly/souqly/internal/feed"
	"github.com/souqly/souqly/internal/notify"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled static catalog into the database",
	Long:  "Runs one ingestion cycle against the bundled static product catalog. Useful for local development and demos without a live feed.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cliLog := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	static, err := feed.NewStaticClient()
	if err != nil {
		return fmt.Errorf("loading static feed: %w", err)
	}

	eng := engine.NewEngine(
		st,
		static,
		notify.NewNoOpNotifier(appLog),
		engine.WithLogger(appLog),
		engine.WithPaginator(feed.NewPaginator(static, "seed")),
		engine.WithSource("seed"),
	)

	cliLog.Info("seeding catalog")

	if err := eng.RunIngestion(ctx); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	cliLog.Info("seed complete")
	return nil
}
