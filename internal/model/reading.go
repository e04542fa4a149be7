package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SensorReading is one row of the sensor_data table. Data holds the raw
// payload, which the backend stores either as a JSON object or as a
// string-encoded JSON object.
type SensorReading struct {
	ID           string          `json:"id,omitempty"`
	SensorTypeID string          `json:"sensor_type_id,omitempty"`
	Timestamp    string          `json:"timestamp"`
	Data         json.RawMessage `json:"data"`
}

// SignalPayload is the decoded per-reading payload. Channels absent from the
// payload stay zero.
type SignalPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DecodePayload decodes a reading's data blob into its three channels.
// String-encoded payloads are unwrapped first.
func DecodePayload(raw json.RawMessage) (SignalPayload, error) {
	var p SignalPayload
	if len(raw) == 0 {
		return p, fmt.Errorf("empty payload")
	}

	// String-encoded payloads carry the JSON object inside a JSON string.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return p, fmt.Errorf("unwrap payload string: %w", err)
		}
		raw = json.RawMessage(inner)
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// HasData reports whether the reading carries a payload at all. JSON null and
// empty blobs count as missing.
func (r SensorReading) HasData() bool {
	if len(r.Data) == 0 {
		return false
	}
	return string(r.Data) != "null"
}

// DayWindow converts a YYYY-MM-DD date into the backend's query window for
// that day: [dayT00:00:00, dayT23:59:59).
func DayWindow(day string) (start, end string, err error) {
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return "", "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", day, err)
	}
	return day + "T00:00:00", day + "T23:59:59", nil
}
