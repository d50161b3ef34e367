// Package sqliteexternal registers the CGO SQLite driver
// (github.com/mattn/go-sqlite3) for the sqlite output format.
//
// It is only compiled with the cgo_sqlite build tag:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/versetab
//
// Without the tag, core/sqlite uses the pure Go modernc.org/sqlite driver
// and cross-compiles to a single static binary. The CGO driver is faster
// when writing large sqlite outputs.
package sqliteexternal
