// Command signalplot fetches one day of accelerometer and gyroscope readings
// and renders a PNG line chart per sensor category.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/gesturelab/gesture-data/internal/config"
	"github.com/gesturelab/gesture-data/internal/database"
	"github.com/gesturelab/gesture-data/internal/plot"
	"github.com/gesturelab/gesture-data/internal/postgrest"
	"github.com/gesturelab/gesture-data/internal/signal"
	"github.com/gesturelab/gesture-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (env vars used when empty)")
	outDir := flag.String("out", ".", "directory for chart output")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <YYYY-MM-DD>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	day := flag.Arg(0)

	logger.Info("starting signalplot",
		"version", version.Version,
		"commit", version.Commit,
		"date", day,
	)

	cfg, err := config.LoadOrEnv(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var src signal.ReadingSource
	if cfg.HasDatabase() {
		logger.Info("using direct database connection", "host", cfg.Database.Host)
		store, err := database.Connect(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		src = store
	} else {
		src = postgrest.NewClient(cfg.Supabase.URL, cfg.Supabase.Key,
			postgrest.WithLogger(logger),
			postgrest.WithTimeout(cfg.Supabase.Timeout),
			postgrest.WithPageSize(cfg.Supabase.PageSize),
		)
	}

	renderer := plot.NewRenderer(cfg.Plot.WidthInches, cfg.Plot.HeightInches, logger)

	if err := signal.Run(ctx, src, renderer.Render, *outDir, day, logger); err != nil {
		logger.Error("signalplot failed", "error", err)
		os.Exit(1)
	}
}
