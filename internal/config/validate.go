package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if !c.HasDatabase() {
		if c.Supabase.URL == "" {
			return errors.New("supabase.url is required (or set " + EnvURL + ")")
		}
		if c.Supabase.Key == "" {
			return errors.New("supabase.key is required (or set " + EnvKey + ")")
		}
	}

	if c.Supabase.URL != "" {
		u, err := url.Parse(c.Supabase.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("supabase.url %q is not a valid URL", c.Supabase.URL)
		}
	}

	if c.Supabase.PageSize < 1 {
		return errors.New("supabase.page_size must be >= 1")
	}

	if c.HasDatabase() {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}

	if c.Plot.WidthInches <= 0 || c.Plot.HeightInches <= 0 {
		return errors.New("plot dimensions must be positive")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
