// Package signal turns raw sensor readings into plottable channel frames.
package signal

import (
	"log/slog"

	"github.com/gesturelab/gesture-data/internal/model"
)

// Sample is one decoded reading: three channels plus the source timestamp.
type Sample struct {
	X, Y, Z   float64
	Timestamp string
}

// Frame is a time-ordered table of decoded samples for one sensor category.
// Skipped counts readings whose payload could not be decoded.
type Frame struct {
	Samples []Sample
	Skipped int
}

// Len returns the number of decoded samples.
func (f Frame) Len() int { return len(f.Samples) }

// Channels splits the frame into per-channel slices for plotting.
func (f Frame) Channels() (xs, ys, zs []float64) {
	xs = make([]float64, len(f.Samples))
	ys = make([]float64, len(f.Samples))
	zs = make([]float64, len(f.Samples))
	for i, s := range f.Samples {
		xs[i] = s.X
		ys[i] = s.Y
		zs[i] = s.Z
	}
	return xs, ys, zs
}

// BuildFrame decodes readings into a frame, preserving row order. Readings
// without a payload are ignored; malformed payloads are logged and skipped.
func BuildFrame(readings []model.SensorReading, logger *slog.Logger) Frame {
	if logger == nil {
		logger = slog.Default()
	}

	frame := Frame{Samples: make([]Sample, 0, len(readings))}
	for _, r := range readings {
		if !r.HasData() {
			continue
		}

		p, err := model.DecodePayload(r.Data)
		if err != nil {
			logger.Warn("skipping malformed payload",
				"timestamp", r.Timestamp,
				"error", err,
			)
			frame.Skipped++
			continue
		}

		frame.Samples = append(frame.Samples, Sample{
			X:         p.X,
			Y:         p.Y,
			Z:         p.Z,
			Timestamp: r.Timestamp,
		})
	}
	return frame
}
