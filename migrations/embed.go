// Package migrations embeds the SQL migration files consumed by
// cmd/migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
