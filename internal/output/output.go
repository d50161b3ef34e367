// Package output writes verse records to files. Each Sink owns one output
// format; New selects it by name.
package output

import (
	"context"

	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/internal/config"
)

// Source describes the file the records were extracted from.
type Source struct {
	Path   string
	SHA256 string
	BLAKE3 string
}

// Sink writes the records of one source file to one output file.
type Sink interface {
	// Extension is appended to the source base name, e.g. ".csv.xz".
	Extension() string
	// Write replaces target with records, already in output order.
	Write(ctx context.Context, target string, src Source, records []ir.VerseRecord) error
}

// New returns the sink for format and compress (see the config package
// constants). Unknown names yield an *errors.UnsupportedError.
func New(format, compress string) (Sink, error) {
	if compress == "" {
		compress = config.CompressNone
	}
	switch compress {
	case config.CompressNone, config.CompressXZ:
	default:
		return nil, errors.NewUnsupported("compression", compress)
	}

	switch format {
	case "", config.FormatCSV:
		return &streamSink{ext: ".csv", encode: encodeCSV, xz: compress == config.CompressXZ}, nil
	case config.FormatJSON:
		return &streamSink{ext: ".json", encode: encodeJSON, xz: compress == config.CompressXZ}, nil
	case config.FormatSQLite:
		if compress != config.CompressNone {
			return nil, errors.NewUnsupported("compression", "sqlite output cannot be compressed")
		}
		return &sqliteSink{}, nil
	}
	return nil, errors.NewUnsupported("output format", format)
}
