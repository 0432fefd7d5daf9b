// Package migrations embeds the goose SQL migrations that define the
// database schema. They are applied at startup via goose.SetBaseFS.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
