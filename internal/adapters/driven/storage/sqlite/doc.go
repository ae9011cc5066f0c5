// Package sqlite stores kith data in a single SQLite database using
// modernc.org/sqlite, so no CGO is needed.
//
// One Store hands out the category, contact, check-in and scheduler stores,
// all sharing the same connection. Check-ins are saved as records; status
// is never a column and is derived from the store's clock on every read.
//
// Migrations live in migrations/ as numbered .up.sql/.down.sql pairs and
// are applied on open. The default database is ~/.kith/metadata.db.
package sqlite
