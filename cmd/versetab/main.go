// Command versetab converts USX and USFM Scripture files into verse tables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	verrors "github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/internal/config"
	"github.com/FocuswithJustin/versetab/internal/logging"
)

const version = "0.1.0"

// Globals are flags shared by every command.
type Globals struct {
	Config    string `name:"config" help:"Path to a TOML configuration file" env:"VERSETAB_CONFIG" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" env:"VERSETAB_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" env:"VERSETAB_LOG_FORMAT"`
}

// CLI defines the command-line interface for versetab.
type CLI struct {
	Globals

	Convert ConvertCmd  `cmd:"" help:"Convert a source file or directory to verse tables"`
	Preview PreviewCmd  `cmd:"" help:"Print the verse records of one source file as a table"`
	Config  ConfigGroup `cmd:"" help:"Configuration utilities"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx    context.Context
	cfg    *config.Config
	stdout io.Writer
}

// Commands that must work without a readable configuration file.
var skipConfigLoad = map[string]bool{
	"config init": true,
	"version":     true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code:
// 0 on success, 1 when the command fails and 2 for usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("versetab"),
		kong.Description("versetab - USX/USFM to verse table converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "versetab: error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "versetab: error: %v\n", err)
		return 2
	}

	cfg := config.Default()
	if !skipConfigLoad[kctx.Command()] {
		loaded, _, _, err := config.Load(cli.Globals.Config)
		if err != nil {
			fmt.Fprintf(stderr, "versetab: error: %v\n", err)
			return 1
		}
		cfg = *loaded
	}

	if err := initLogging(&cli.Globals, &cfg, stderr); err != nil {
		fmt.Fprintf(stderr, "versetab: error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := kctx.Run(&runContext{ctx: ctx, cfg: &cfg, stdout: stdout}); err != nil {
		logging.Debug("command failed", "command", kctx.Command(), "error", err)
		fmt.Fprintf(stderr, "versetab: error: %v\n", err)
		if verrors.IsFatal(err) {
			// The input path itself was unusable.
			fmt.Fprintf(stderr, "Run \"versetab %s --help\" for usage.\n", commandPath(kctx.Command()))
		}
		return 1
	}
	return 0
}

// commandPath drops argument placeholders from a kong command string:
// "convert <input>" -> "convert".
func commandPath(command string) string {
	var words []string
	for _, w := range strings.Fields(command) {
		if !strings.HasPrefix(w, "<") {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// initLogging applies the log flags over the configuration and installs
// the default logger on stderr.
func initLogging(g *Globals, cfg *config.Config, stderr io.Writer) error {
	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Logging.Format = g.LogFormat
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return err
	}
	logging.InitLoggerTo(stderr, level, format)
	return nil
}
