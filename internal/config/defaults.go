package config

import (
	"strings"
	"time"
)

// Default values for optional configuration fields.
const (
	DefaultTimeout           = 30 * time.Second
	DefaultPageSize          = 1000
	DefaultDBPort            = 5432
	DefaultDBSSLMode         = "prefer"
	DefaultMaxConns          = 4
	DefaultMinConns          = 1
	DefaultHeartbeatInterval = 30 * time.Second
	DefaultBufferSize        = 256
	DefaultPlotWidthInches   = 12
	DefaultPlotHeightInches  = 6
)

func (c *Config) applyDefaults() {
	// Supabase defaults
	if c.Supabase.Timeout == 0 {
		c.Supabase.Timeout = DefaultTimeout
	}
	if c.Supabase.PageSize == 0 {
		c.Supabase.PageSize = DefaultPageSize
	}

	// Database defaults (only when a direct connection is configured)
	if c.Database.Host != "" {
		if c.Database.Port == 0 {
			c.Database.Port = DefaultDBPort
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = DefaultDBSSLMode
		}
		if c.Database.MaxConns == 0 {
			c.Database.MaxConns = DefaultMaxConns
		}
		if c.Database.MinConns == 0 {
			c.Database.MinConns = DefaultMinConns
		}
	}

	// Realtime defaults
	if c.Realtime.URL == "" && c.Supabase.URL != "" {
		c.Realtime.URL = realtimeURL(c.Supabase.URL)
	}
	if c.Realtime.HeartbeatInterval == 0 {
		c.Realtime.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if c.Realtime.BufferSize == 0 {
		c.Realtime.BufferSize = DefaultBufferSize
	}

	// Plot defaults
	if c.Plot.WidthInches == 0 {
		c.Plot.WidthInches = DefaultPlotWidthInches
	}
	if c.Plot.HeightInches == 0 {
		c.Plot.HeightInches = DefaultPlotHeightInches
	}
}

// realtimeURL derives the realtime websocket endpoint from the project URL.
func realtimeURL(base string) string {
	ws := base
	switch {
	case strings.HasPrefix(base, "https://"):
		ws = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		ws = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return strings.TrimRight(ws, "/") + "/realtime/v1/websocket"
}
