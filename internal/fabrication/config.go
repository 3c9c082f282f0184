package fabrication

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds fabrication engine tuning parameters.
type Config struct {
	SkipInitialRun  bool    `toml:"skip_initial_run"`
	RelationshipGap float64 `toml:"relationship_gap"`
	IssueLinkGap    float64 `toml:"issue_link_gap"`
	PulseWindow     string  `toml:"pulse_window"`
	PulseLimit      int     `toml:"pulse_limit"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	SkipInitialRun  string
	RelationshipGap string
	IssueLinkGap    string
	PulseWindow     string
	PulseLimit      string
}

// PulseWindowDuration returns PulseWindow as a time.Duration.
func (c *Config) PulseWindowDuration() time.Duration {
	d, _ := time.ParseDuration(c.PulseWindow)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.SkipInitialRun {
		c.SkipInitialRun = true
	}
	if overlay.RelationshipGap != 0 {
		c.RelationshipGap = overlay.RelationshipGap
	}
	if overlay.IssueLinkGap != 0 {
		c.IssueLinkGap = overlay.IssueLinkGap
	}
	if overlay.PulseWindow != "" {
		c.PulseWindow = overlay.PulseWindow
	}
	if overlay.PulseLimit != 0 {
		c.PulseLimit = overlay.PulseLimit
	}
}

func (c *Config) loadDefaults() {
	if c.RelationshipGap == 0 {
		c.RelationshipGap = 0.15
	}
	if c.IssueLinkGap == 0 {
		c.IssueLinkGap = 0.3
	}
	if c.PulseWindow == "" {
		c.PulseWindow = "720h"
	}
	if c.PulseLimit == 0 {
		c.PulseLimit = 50
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.SkipInitialRun != "" {
		if v := os.Getenv(env.SkipInitialRun); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.SkipInitialRun = b
			}
		}
	}
	if env.RelationshipGap != "" {
		if v := os.Getenv(env.RelationshipGap); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.RelationshipGap = f
			}
		}
	}
	if env.IssueLinkGap != "" {
		if v := os.Getenv(env.IssueLinkGap); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.IssueLinkGap = f
			}
		}
	}
	if env.PulseWindow != "" {
		if v := os.Getenv(env.PulseWindow); v != "" {
			c.PulseWindow = v
		}
	}
	if env.PulseLimit != "" {
		if v := os.Getenv(env.PulseLimit); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.PulseLimit = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.RelationshipGap < 0 || c.RelationshipGap >= 1 {
		return fmt.Errorf("relationship_gap must be in [0, 1)")
	}
	if c.IssueLinkGap < 0 || c.IssueLinkGap >= 1 {
		return fmt.Errorf("issue_link_gap must be in [0, 1)")
	}
	if _, err := time.ParseDuration(c.PulseWindow); err != nil {
		return fmt.Errorf("invalid pulse_window: %w", err)
	}
	if c.PulseLimit < 1 {
		return fmt.Errorf("pulse_limit must be positive")
	}
	return nil
}
