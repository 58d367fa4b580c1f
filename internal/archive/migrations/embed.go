package migrations

import "embed"

// FS embeds all SQL migration files for the sqlite archive backend.
//
//go:embed *.sql
var FS embed.FS
