// Package migrations holds the numbered schema changes for kith's database.
// Files are named NNN_description.up.sql and NNN_description.down.sql.
package migrations

import "embed"

// FS is read by the sqlite store on open.
//
//go:embed *.sql
var FS embed.FS
