package config

import (
	"errors"
	"fmt"

	"github.com/FocuswithJustin/versetab/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case FormatCSV, FormatJSON, FormatSQLite:
	default:
		return fmt.Errorf("output.format must be one of csv, json, sqlite (got %q)", c.Output.Format)
	}
	switch c.Output.Compress {
	case CompressNone, CompressXZ:
	default:
		return fmt.Errorf("output.compress must be none or xz (got %q)", c.Output.Compress)
	}
	if c.Output.Format == FormatSQLite && c.Output.Compress != CompressNone {
		return errors.New("output.compress is not supported for the sqlite format")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}
