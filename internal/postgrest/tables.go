package postgrest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gesturelab/gesture-data/internal/model"
)

// InsertEventCode inserts a single event-code row.
func (c *Client) InsertEventCode(ctx context.Context, ec model.EventCode) error {
	return c.Insert(ctx, model.EventCodesTable, ec)
}

// SensorReadings fetches all readings for one sensor category on the given
// YYYY-MM-DD day, ordered by timestamp.
func (c *Client) SensorReadings(ctx context.Context, sensorTypeID uuid.UUID, day string) ([]model.SensorReading, error) {
	start, end, err := model.DayWindow(day)
	if err != nil {
		return nil, err
	}

	q := From(model.SensorDataTable).
		Eq("sensor_type_id", sensorTypeID.String()).
		Gte("timestamp", start).
		Lt("timestamp", end).
		OrderAsc("timestamp")

	var readings []model.SensorReading
	if err := c.Select(ctx, q, &readings); err != nil {
		return nil, fmt.Errorf("fetch sensor readings: %w", err)
	}
	return readings, nil
}
