package output

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/core/sqlite"
	"github.com/FocuswithJustin/versetab/internal/fileutil"
)

const sqliteSchema = `
CREATE TABLE verses (
	ord         INTEGER PRIMARY KEY,
	book        TEXT NOT NULL,
	chapter     TEXT NOT NULL,
	verse       TEXT NOT NULL,
	text_plain  TEXT NOT NULL,
	text_styled TEXT NOT NULL,
	footnotes   TEXT NOT NULL,
	crossrefs   TEXT NOT NULL,
	subtitle    TEXT NOT NULL
);
CREATE INDEX verses_ref ON verses (book, chapter, verse);
CREATE TABLE sources (
	file      TEXT NOT NULL,
	sha256    TEXT NOT NULL,
	blake3    TEXT NOT NULL,
	row_count INTEGER NOT NULL
);
`

// sqliteSink writes a database with a verses table (ord keeps the output
// order) and a sources table describing the converted file.
type sqliteSink struct{}

func (s *sqliteSink) Extension() string {
	return ".sqlite"
}

func (s *sqliteSink) Write(ctx context.Context, target string, src Source, records []ir.VerseRecord) error {
	f, err := fileutil.CreateAtomic(target)
	if err != nil {
		return errors.NewIO("create", target, err)
	}
	tmp, err := f.Detach()
	if err != nil {
		f.Abort()
		return errors.NewIO("create", target, err)
	}

	if err := writeDatabase(ctx, tmp, src, records); err != nil {
		f.Abort()
		return errors.NewIO("write", target, err)
	}
	if err := f.Commit(); err != nil {
		return errors.NewIO("commit", target, err)
	}
	return nil
}

func writeDatabase(ctx context.Context, path string, src Source, records []ir.VerseRecord) error {
	db, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return err
	}

	err = sqlite.WithTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO verses
			(ord, book, chapter, verse, text_plain, text_styled, footnotes, crossrefs, subtitle)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, rec := range records {
			if _, err := stmt.ExecContext(ctx, i+1, rec.Book, rec.Chapter, rec.Verse,
				rec.TextPlain, rec.TextStyled, rec.Footnotes, rec.Crossrefs, rec.Subtitle); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO sources (file, sha256, blake3, row_count) VALUES (?, ?, ?, ?)`,
			filepath.Base(src.Path), src.SHA256, src.BLAKE3, len(records))
		return err
	})
	if err != nil {
		return err
	}
	return db.Close()
}
