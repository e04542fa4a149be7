package signal

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gesturelab/gesture-data/internal/model"
)

// ReadingSource is the query side of a backend, REST or direct Postgres.
type ReadingSource interface {
	SensorReadings(ctx context.Context, sensorTypeID uuid.UUID, day string) ([]model.SensorReading, error)
}

// RenderFunc renders a frame to an image file at path.
type RenderFunc func(frame Frame, title, path string) error

// Category names one sensor stream and its chart artifact.
type Category struct {
	Name     string
	TypeID   uuid.UUID
	Title    string
	Filename string
}

// The two categories the plotter covers.
var (
	Accelerometer = Category{
		Name:     "accelerometer",
		TypeID:   model.AccelerometerTypeID,
		Title:    "Accelerometer Signal",
		Filename: "accel_signal_plot.png",
	}
	Gyroscope = Category{
		Name:     "gyroscope",
		TypeID:   model.GyroscopeTypeID,
		Title:    "Gyroscope Signal",
		Filename: "gyro_signal_plot.png",
	}
)

// Run fetches both categories for day, then renders one chart per category
// into outDir. An empty accelerometer result ends the run before any chart is
// drawn; an empty gyroscope result ends it after neither chart is drawn
// either. Both cases are reported and return nil.
func Run(ctx context.Context, src ReadingSource, render RenderFunc, outDir, day string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	accel, err := src.SensorReadings(ctx, Accelerometer.TypeID, day)
	if err != nil {
		return fmt.Errorf("fetch accelerometer readings: %w", err)
	}
	gyro, err := src.SensorReadings(ctx, Gyroscope.TypeID, day)
	if err != nil {
		return fmt.Errorf("fetch gyroscope readings: %w", err)
	}

	if len(accel) == 0 {
		logger.Info("no data found for the given date", "date", day)
		return nil
	}
	if len(gyro) == 0 {
		logger.Info("no gyroscope data found for the given date", "date", day)
		return nil
	}

	for _, job := range []struct {
		cat      Category
		readings []model.SensorReading
	}{
		{Accelerometer, accel},
		{Gyroscope, gyro},
	} {
		frame := BuildFrame(job.readings, logger)
		if frame.Skipped > 0 {
			logger.Warn("some payloads could not be decoded",
				"category", job.cat.Name,
				"skipped", frame.Skipped,
			)
		}

		out := filepath.Join(outDir, job.cat.Filename)
		if err := render(frame, job.cat.Title, out); err != nil {
			return fmt.Errorf("render %s chart: %w", job.cat.Name, err)
		}

		logger.Info("plot saved",
			"category", job.cat.Name,
			"file", out,
			"samples", frame.Len(),
		)
	}

	return nil
}
