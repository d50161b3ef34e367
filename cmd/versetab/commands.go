package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	verrors "github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/plugins"
	"github.com/FocuswithJustin/versetab/core/sqlite"
	"github.com/FocuswithJustin/versetab/internal/config"
	"github.com/FocuswithJustin/versetab/internal/convert"
	"github.com/FocuswithJustin/versetab/internal/embedded"
	"github.com/FocuswithJustin/versetab/internal/fileutil"
	"github.com/FocuswithJustin/versetab/internal/output"
)

// ConvertCmd converts every supported file named by Input.
type ConvertCmd struct {
	Input    string `arg:"" help:"Source file or directory (.usx, .usfm, .sfm)" type:"path"`
	Out      string `short:"o" help:"Output directory (default: next to each source)" type:"path"`
	Format   string `short:"f" help:"Output format: csv, json or sqlite"`
	Compress string `help:"Compression for csv/json output: none or xz"`
}

func (c *ConvertCmd) Run(rc *runContext) error {
	opts := convert.Options{
		Input:    c.Input,
		OutDir:   rc.cfg.Output.Dir,
		Format:   rc.cfg.Output.Format,
		Compress: rc.cfg.Output.Compress,
	}
	if c.Out != "" {
		opts.OutDir = c.Out
	}
	if c.Format != "" {
		opts.Format = strings.ToLower(c.Format)
	}
	if c.Compress != "" {
		opts.Compress = strings.ToLower(c.Compress)
	}

	report, err := convert.Run(rc.ctx, opts)
	if err != nil {
		return err
	}

	for _, f := range report.Files {
		if f.Err != nil {
			fmt.Fprintf(rc.stdout, "  [skip] %s: %v\n", f.Source, f.Err)
			continue
		}
		fmt.Fprintf(rc.stdout, "  [ok]   %s -> %s (%d verses)\n", f.Source, f.Output, f.Rows)
	}
	fmt.Fprintf(rc.stdout, "Converted %d file(s), skipped %d, %d verses written\n",
		report.Converted, report.Skipped, report.Rows)
	return nil
}

// PreviewCmd prints the sorted records of a single file.
type PreviewCmd struct {
	File  string `arg:"" help:"Source file" type:"path"`
	Limit int    `short:"n" default:"20" help:"Maximum rows to print, 0 for all"`
}

func (c *PreviewCmd) Run(rc *runContext) error {
	info, err := os.Stat(c.File)
	if err != nil {
		return &verrors.InputError{Path: c.File, Message: "cannot access input", Err: err}
	}
	if info.IsDir() {
		return verrors.NewInput(c.File, "preview takes a single file, not a directory")
	}
	if !fileutil.HasExtension(c.File, embedded.Extensions()) {
		return verrors.NewInput(c.File, "unsupported extension "+filepath.Ext(c.File))
	}
	if c.Limit < 0 {
		return verrors.NewInput("", "--limit must not be negative")
	}

	records, _, err := convert.Extract(c.File)
	if err != nil {
		return err
	}
	return output.RenderTable(rc.stdout, records, c.Limit)
}

// ConfigGroup contains configuration commands.
type ConfigGroup struct {
	Init ConfigInitCmd `cmd:"" help:"Write a sample configuration file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
}

// ConfigInitCmd writes the sample configuration.
type ConfigInitCmd struct {
	Path      string `short:"p" help:"Destination (default: ~/.config/versetab/config.toml)"`
	Overwrite bool   `help:"Replace an existing file"`
}

func (c *ConfigInitCmd) Run(rc *runContext) error {
	target := strings.TrimSpace(c.Path)
	if target == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("determine default config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		target = expanded
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %q: %w", dir, err)
	}

	if !c.Overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("check config path: %w", err)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return err
	}
	fmt.Fprintf(rc.stdout, "Wrote sample configuration to %s\n", target)
	return nil
}

// ConfigShowCmd prints the configuration after file and defaults are merged.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(rc *runContext) error {
	dir := rc.cfg.Output.Dir
	if dir == "" {
		dir = "(next to source)"
	}
	fmt.Fprintf(rc.stdout, "output.dir      %s\n", dir)
	fmt.Fprintf(rc.stdout, "output.format   %s\n", rc.cfg.Output.Format)
	fmt.Fprintf(rc.stdout, "output.compress %s\n", rc.cfg.Output.Compress)
	fmt.Fprintf(rc.stdout, "log.level       %s\n", rc.cfg.Logging.Level)
	fmt.Fprintf(rc.stdout, "log.format      %s\n", rc.cfg.Logging.Format)
	return nil
}

// VersionCmd prints version, SQLite driver and format handler information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	fmt.Fprintf(rc.stdout, "versetab version %s\n", version)

	info := sqlite.GetInfo()
	fmt.Fprintf(rc.stdout, "sqlite driver: %s (%s, %s)\n", info.DriverName, info.DriverType, info.Package)

	fmt.Fprintln(rc.stdout, "Formats:")
	for _, p := range plugins.ListEmbeddedPlugins() {
		fmt.Fprintf(rc.stdout, "  %s v%s %s\n", p.Manifest.PluginID, p.Manifest.Version,
			strings.Join(p.Manifest.Extensions, " "))
	}
	return nil
}
