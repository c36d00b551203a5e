// Package migrations embeds the goose migrations for SQL-backed slot
// stores, one directory per dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
