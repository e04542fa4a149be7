// Package realtime subscribes to the backend's realtime websocket.
//
// The endpoint speaks phoenix-channel frames: a phx_join per table topic,
// periodic heartbeats on the "phoenix" topic, and INSERT events carrying the
// newly inserted row.
package realtime
