// Command signalwatch subscribes to the backend's realtime websocket and
// logs sensor_data inserts as they arrive. Runs until interrupted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/gesturelab/gesture-data/internal/config"
	"github.com/gesturelab/gesture-data/internal/model"
	"github.com/gesturelab/gesture-data/internal/realtime"
	"github.com/gesturelab/gesture-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (env vars used when empty)")
	table := flag.String("table", model.SensorDataTable, "table to watch for inserts")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]\n", os.Args[0])
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

	logger.Info("starting signalwatch",
		"version", version.Version,
		"commit", version.Commit,
		"table", *table,
	)

	cfg, err := config.LoadOrEnv(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Realtime.URL == "" {
		logger.Error("no realtime endpoint configured (set supabase.url or realtime.url)")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := realtime.NewClient(realtime.Config{
		URL:               cfg.Realtime.URL,
		APIKey:            cfg.Supabase.Key,
		HeartbeatInterval: cfg.Realtime.HeartbeatInterval,
		BufferSize:        cfg.Realtime.BufferSize,
	}, logger)

	if err := client.Connect(ctx); err != nil {
		logger.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := client.Subscribe(*table); err != nil {
		logger.Error("failed to subscribe", "table", *table, "error", err)
		os.Exit(1)
	}

	logger.Info("watching for inserts", "table", *table)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return

		case err := <-client.Errors():
			logger.Error("realtime connection failed", "error", err)
			os.Exit(1)

		case ev := <-client.Inserts():
			logInsert(logger, ev)
		}
	}
}

// logInsert reports one inserted row, decoding the signal payload when the
// row is a sensor reading.
func logInsert(logger *slog.Logger, ev realtime.InsertEvent) {
	if ev.Table == model.SensorDataTable {
		var reading model.SensorReading
		if err := json.Unmarshal(ev.Record, &reading); err == nil && reading.HasData() {
			if p, err := model.DecodePayload(reading.Data); err == nil {
				logger.Info("sensor reading",
					"timestamp", reading.Timestamp,
					"x", p.X,
					"y", p.Y,
					"z", p.Z,
				)
				return
			}
		}
	}

	logger.Info("row inserted", "table", ev.Table, "record", string(ev.Record))
}
