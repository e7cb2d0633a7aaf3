// Package migrations embeds the goose migrations for the SQL-backed
// storage backends. SQLite and Postgres keep separate directories because
// their blob/timestamp types differ.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
