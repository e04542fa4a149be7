package model

import (
	"math"

	"github.com/google/uuid"
)

// Sensor category identifiers, fixed by the backend schema.
var (
	// AccelerometerTypeID identifies the accelerometer stream in sensor_data.
	AccelerometerTypeID = uuid.MustParse("3b48eed5-6ece-4eb8-8c88-b5e645839385")

	// GyroscopeTypeID identifies the gyroscope stream in sensor_data.
	GyroscopeTypeID = uuid.MustParse("d4ad2653-b430-40c2-9f47-bdc140119c57")
)

// Table names on the remote backend.
const (
	EventCodesTable = "event_codes"
	SensorDataTable = "sensor_data"
)

// EventCode is one row of the gesture event taxonomy, sourced from a
// spreadsheet and inserted into the event_codes table. All columns are
// nullable; nil fields marshal to JSON null.
type EventCode struct {
	Ind             *float64 `json:"e_ind"`
	DescriptionEngl *string  `json:"e_description_engl"`
	DescriptionSlo  *string  `json:"e_description_slo"`
	ID              *float64 `json:"e_id"`
	DescriptionButt *string  `json:"e_description_butt"`
	Notes           *string  `json:"notes"`
}

// FiniteOrNil returns a pointer to v, or nil when v is NaN or ±Inf.
// Non-finite values must never reach the backend.
func FiniteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
