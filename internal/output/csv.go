package output

import (
	"encoding/csv"
	"io"

	"github.com/FocuswithJustin/versetab/core/ir"
)

// encodeCSV writes a header row and one row per record with RFC 4180
// quoting and CRLF line endings.
func encodeCSV(w io.Writer, records []ir.VerseRecord) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(ir.Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
