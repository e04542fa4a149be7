// Command eventimport bulk-imports gesture event codes from an XLSX
// spreadsheet into the remote event_codes table, one insert per row.
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
	"github.com/gesturelab/gesture-data/internal/importer"
	"github.com/gesturelab/gesture-data/internal/postgrest"
	"github.com/gesturelab/gesture-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (env vars used when empty)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <events.xlsx>\n", os.Args[0])
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
	xlsxPath := flag.Arg(0)

	logger.Info("starting eventimport",
		"version", version.Version,
		"commit", version.Commit,
		"path", xlsxPath,
	)

	cfg, err := config.LoadOrEnv(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var sink importer.EventSink
	if cfg.HasDatabase() {
		logger.Info("using direct database connection", "host", cfg.Database.Host)
		store, err := database.Connect(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		sink = store
	} else {
		sink = postgrest.NewClient(cfg.Supabase.URL, cfg.Supabase.Key,
			postgrest.WithLogger(logger),
			postgrest.WithTimeout(cfg.Supabase.Timeout),
		)
	}

	n, err := importer.New(sink, logger).Run(ctx, xlsxPath)
	if err != nil {
		logger.Error("import failed", "inserted", n, "error", err)
		os.Exit(1)
	}

	logger.Info("import complete", "inserted", n)
}
