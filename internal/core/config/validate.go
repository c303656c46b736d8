package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Validate checks the configuration for values that would fail later in
// confusing ways and reports them up front.
func (c *Config) Validate() error {
	if c.TaskFile != "" && !filepath.IsAbs(c.TaskFile) && c.DataDir == "" {
		return fmt.Errorf("task_file %q is relative but no data directory is set", c.TaskFile)
	}

	if c.Recent < 0 {
		return fmt.Errorf("recent must be positive, got %d", c.Recent)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
