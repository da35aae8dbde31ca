// Package repository defines where generated topologies are persisted.
//
// The Persister interface receives one batch per entity kind. The generator
// calls it synchronously, in dependency order, after each batch is complete
// in memory, and returns any error to its caller unchanged.
//
// # Implementations
//
// - sqlite: database/sql on modernc.org/sqlite, one transaction per batch
// - postgres: pgx connection pool, COPY per batch
// - file: dry run, writes the whole network through a codec on Close
//
// # Schema
//
// Table names, column lists and row mapping live in schema.go so that both
// SQL backends write identical rows. To add a column, append it to the
// table's column list and to its row function in the same position.
package repository
