// Package model defines shared data types used across the gesture-data tools.
//
// Conventions:
//   - Nullable remote columns map to pointer fields; nil marshals to JSON null
//   - Timestamps: ISO-8601 strings, as stored by the backend
//   - Sensor category identifiers: uuid.UUID constants fixed by the backend
package model
