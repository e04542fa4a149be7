// Package importer loads event-code spreadsheets into the remote table.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gesturelab/gesture-data/internal/model"
	"github.com/gesturelab/gesture-data/internal/sheet"
)

// EventSink is the insert side of a backend, REST or direct Postgres.
type EventSink interface {
	InsertEventCode(ctx context.Context, ec model.EventCode) error
}

// Importer reads event-code rows from a spreadsheet and submits them one at
// a time, in row order. The first failed insert aborts the run; rows already
// inserted stay inserted.
type Importer struct {
	sink   EventSink
	logger *slog.Logger
}

// New creates an Importer writing to sink.
func New(sink EventSink, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{sink: sink, logger: logger}
}

// Run imports every row of the spreadsheet at path and returns the number of
// rows inserted.
func (im *Importer) Run(ctx context.Context, path string) (int, error) {
	codes, err := sheet.ReadEventCodes(path)
	if err != nil {
		return 0, err
	}

	im.logger.Info("importing event codes", "path", path, "rows", len(codes))

	for i, ec := range codes {
		if err := im.sink.InsertEventCode(ctx, ec); err != nil {
			return i, fmt.Errorf("insert row %d: %w", i+1, err)
		}
		im.logger.Debug("inserted event code", "row", i+1)
	}

	return len(codes), nil
}
