package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gesturelab/gesture-data/internal/config"
	"github.com/gesturelab/gesture-data/internal/model"
)

// Store runs event-code inserts and sensor queries over a direct connection.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect creates a connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	connStr := BuildConnString(cfg)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies the connection is healthy.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// InsertEventCode inserts a single event-code row. nil fields insert as NULL.
func (s *Store) InsertEventCode(ctx context.Context, ec model.EventCode) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO event_codes (e_ind, e_description_engl, e_description_slo, e_id, e_description_butt, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ec.Ind, ec.DescriptionEngl, ec.DescriptionSlo, ec.ID, ec.DescriptionButt, ec.Notes)
	if err != nil {
		return fmt.Errorf("insert event code: %w", err)
	}
	return nil
}

// SensorReadings fetches all readings for one sensor category on the given
// YYYY-MM-DD day, ordered by timestamp.
func (s *Store) SensorReadings(ctx context.Context, sensorTypeID uuid.UUID, day string) ([]model.SensorReading, error) {
	start, end, err := model.DayWindow(day)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, timestamp, data
		FROM sensor_data
		WHERE sensor_type_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp
	`, sensorTypeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sensor readings: %w", err)
	}
	defer rows.Close()

	var readings []model.SensorReading
	for rows.Next() {
		var (
			id   string
			ts   string
			data []byte
		)
		if err := rows.Scan(&id, &ts, &data); err != nil {
			return nil, fmt.Errorf("scan sensor reading: %w", err)
		}
		readings = append(readings, model.SensorReading{
			ID:           id,
			SensorTypeID: sensorTypeID.String(),
			Timestamp:    ts,
			Data:         json.RawMessage(data),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sensor readings: %w", err)
	}

	s.logger.Debug("fetched sensor readings",
		"sensor_type_id", sensorTypeID,
		"day", day,
		"rows", len(readings),
	)
	return readings, nil
}
