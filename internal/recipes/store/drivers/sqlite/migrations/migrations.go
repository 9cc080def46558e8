// Package migrations embeds the SQL migration files that are applied to the
// database at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
