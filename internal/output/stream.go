package output

import (
	"bufio"
	"context"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/internal/fileutil"
)

// xzNewWriter is a variable to allow testing of compressor errors.
var xzNewWriter = xz.NewWriter

// streamSink writes an encoded byte stream, optionally xz-compressed,
// through an atomic file.
type streamSink struct {
	ext    string
	encode func(io.Writer, []ir.VerseRecord) error
	xz     bool
}

func (s *streamSink) Extension() string {
	if s.xz {
		return s.ext + ".xz"
	}
	return s.ext
}

func (s *streamSink) Write(ctx context.Context, target string, _ Source, records []ir.VerseRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := fileutil.CreateAtomic(target)
	if err != nil {
		return errors.NewIO("create", target, err)
	}

	var w io.Writer = f
	var xw *xz.Writer
	if s.xz {
		xw, err = xzNewWriter(f)
		if err != nil {
			f.Abort()
			return errors.NewIO("compress", target, err)
		}
		w = xw
	}

	bw := bufio.NewWriter(w)
	if err := s.encode(bw, records); err != nil {
		f.Abort()
		return errors.NewIO("write", target, err)
	}
	if err := bw.Flush(); err != nil {
		f.Abort()
		return errors.NewIO("write", target, err)
	}
	if xw != nil {
		if err := xw.Close(); err != nil {
			f.Abort()
			return errors.NewIO("compress", target, err)
		}
	}
	if err := f.Commit(); err != nil {
		return errors.NewIO("commit", target, err)
	}
	return nil
}
