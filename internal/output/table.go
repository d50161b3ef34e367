package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/FocuswithJustin/versetab/core/ir"
)

// previewColumns are the record fields shown by RenderTable.
var previewColumns = []string{"Book", "Chapter", "Verse", "TextPlain", "Footnotes", "Crossrefs", "Subtitle"}

// maxCellWidth wraps long verse text in preview tables.
const maxCellWidth = 60

// RenderTable writes up to limit records (all when limit <= 0) as a table.
func RenderTable(w io.Writer, records []ir.VerseRecord, limit int) error {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(previewColumns))
	for i, name := range previewColumns {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, rec := range records {
		tw.AppendRow(table.Row{rec.Book, rec.Chapter, rec.Verse, rec.TextPlain, rec.Footnotes, rec.Crossrefs, rec.Subtitle})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: maxCellWidth},
		{Number: 5, WidthMax: maxCellWidth},
		{Number: 6, WidthMax: maxCellWidth},
		{Number: 7, WidthMax: maxCellWidth},
	})

	if _, err := io.WriteString(w, tw.Render()+"\n"); err != nil {
		return err
	}
	return nil
}
