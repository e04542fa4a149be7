package config

import "time"

// Config is the root configuration shared by all gesture-data commands.
type Config struct {
	Supabase SupabaseConfig `yaml:"supabase"`
	Database DBConfig       `yaml:"database"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Plot     PlotConfig     `yaml:"plot"`
}

// SupabaseConfig holds the hosted backend's table API settings.
type SupabaseConfig struct {
	URL      string        `yaml:"url"`       // project base URL, e.g. https://xyz.supabase.co
	Key      string        `yaml:"key"`       // publishable/anon API key, passed through opaquely
	Timeout  time.Duration `yaml:"timeout"`   // per-request HTTP timeout
	PageSize int           `yaml:"page_size"` // rows fetched per Range window
}

// DBConfig holds an optional direct Postgres connection. When Host is set,
// commands talk to the database directly instead of the table API.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// RealtimeConfig holds the realtime websocket settings for signalwatch.
type RealtimeConfig struct {
	URL               string        `yaml:"url"` // derived from Supabase.URL when empty
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	BufferSize        int           `yaml:"buffer_size"`
}

// PlotConfig holds chart rendering settings for signalplot.
type PlotConfig struct {
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
}

// HasDatabase reports whether a direct Postgres connection is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != ""
}
