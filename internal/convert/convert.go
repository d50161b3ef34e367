// Package convert runs a conversion batch: discover the source files, turn
// each one into sorted verse records and hand them to an output sink.
//
// Files are processed one at a time, each by a fresh engine. A file that
// cannot be read or parsed is logged and skipped; only problems with the
// batch input itself abort the run.
package convert

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/FocuswithJustin/versetab/core/cas"
	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/core/plugins"
	"github.com/FocuswithJustin/versetab/internal/embedded"
	"github.com/FocuswithJustin/versetab/internal/fileutil"
	"github.com/FocuswithJustin/versetab/internal/logging"
	"github.com/FocuswithJustin/versetab/internal/output"
	"github.com/FocuswithJustin/versetab/internal/validation"
)

// Options configures one batch.
type Options struct {
	Input    string // source file or directory
	OutDir   string // empty: write next to each source
	Format   string // output format, see output.New
	Compress string // compression mode, see output.New
}

// FileResult is the outcome for one source file.
type FileResult struct {
	Source string
	Output string // empty when skipped
	SHA256 string
	BLAKE3 string
	Rows   int
	Err    error // non-nil when skipped
}

// Report summarises a batch.
type Report struct {
	RunID     string
	Converted int
	Skipped   int
	Rows      int
	Files     []FileResult
}

// Run converts every source file named by opts.Input. The returned error is
// non-nil only for batch-level failures: an unusable input, an unsupported
// output option, an unusable output directory or cancellation. Per-file
// failures are recorded in the Report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	sink, err := output.New(opts.Format, opts.Compress)
	if err != nil {
		return nil, err
	}

	files, err := fileutil.Discover(opts.Input, embedded.Extensions())
	if err != nil {
		return nil, err
	}

	if opts.OutDir != "" {
		if err := validation.ValidatePath(opts.OutDir); err != nil {
			return nil, &errors.InputError{Path: opts.OutDir, Message: "invalid output directory", Err: err}
		}
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, &errors.InputError{Path: opts.OutDir, Message: "cannot create output directory", Err: err}
		}
	}

	report := &Report{RunID: logging.NewRunID()}
	ctx = logging.WithRunID(ctx, report.RunID)
	logging.RunStarted(ctx, opts.Input, len(files), "format", sink.Extension())

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fileStart := time.Now()
		res := convertFile(ctx, sink, path, opts.OutDir)
		report.Files = append(report.Files, res)

		if res.Err != nil {
			report.Skipped++
			logging.FileSkipped(ctx, path, res.Err)
			continue
		}
		report.Converted++
		report.Rows += res.Rows
		logging.FileConverted(ctx, path, res.Output, res.Rows, time.Since(fileStart),
			"sha256", res.SHA256, "blake3", res.BLAKE3)
	}

	logging.RunFinished(ctx, report.Converted, report.Skipped, report.Rows, time.Since(start))
	return report, nil
}

func convertFile(ctx context.Context, sink output.Sink, path, outDir string) FileResult {
	res := FileResult{Source: path}

	records, digest, err := Extract(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.SHA256 = digest.SHA256
	res.BLAKE3 = digest.BLAKE3

	target := fileutil.OutputPath(path, outDir, sink.Extension())
	if err := sink.Write(ctx, target, output.Source{Path: path, SHA256: digest.SHA256, BLAKE3: digest.BLAKE3}, records); err != nil {
		res.Err = err
		return res
	}
	res.Output = target
	res.Rows = len(records)
	return res
}

// Extract reads one source file and returns its records in output order
// together with the digests of the file.
func Extract(path string) ([]ir.VerseRecord, *cas.HashResult, error) {
	plugin, ok := plugins.ForPath(path)
	if !ok {
		return nil, nil, errors.NewUnsupported("source extension", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, errors.NewIO("stat", path, err)
	}
	if err := validation.ValidateSize(info.Size()); err != nil {
		return nil, nil, &errors.ParseError{Format: plugin.Manifest.Format, Path: path, Message: "file too large", Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.NewIO("read", path, err)
	}
	if _, err := validation.ValidateSource(data, path); err != nil {
		return nil, nil, &errors.ParseError{Format: plugin.Manifest.Format, Path: path, Message: "unexpected content", Err: err}
	}

	records, err := plugin.Format.Extract(path, data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", plugin.Manifest.PluginID, err)
	}
	ir.SortRecords(records)
	return records, cas.Hash(data), nil
}
