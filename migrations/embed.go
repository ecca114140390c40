// Package migrations holds the verification records schema. database.Migrate
// applies the *.up.sql files in name order; the down files are for manual
// rollback.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
