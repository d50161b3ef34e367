package output

import (
	"encoding/json"
	"io"

	"github.com/FocuswithJustin/versetab/core/ir"
)

// encodeJSON writes the records as one indented JSON array.
func encodeJSON(w io.Writer, records []ir.VerseRecord) error {
	if records == nil {
		records = []ir.VerseRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
