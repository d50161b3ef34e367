package config

import (
	"fmt"
	"strings"
)

// Normalize lower-cases enumerated values, fills blanks with defaults and
// expands the output directory.
func (c *Config) Normalize() error {
	defaults := Default()

	c.Output.Format = lowerOr(c.Output.Format, defaults.Output.Format)
	c.Output.Compress = lowerOr(c.Output.Compress, defaults.Output.Compress)
	c.Logging.Level = lowerOr(c.Logging.Level, defaults.Logging.Level)
	c.Logging.Format = lowerOr(c.Logging.Format, defaults.Logging.Format)

	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = ""
		return nil
	}
	dir, err := expandPath(strings.TrimSpace(c.Output.Dir))
	if err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.Dir = dir
	return nil
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
