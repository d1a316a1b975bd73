// Package checkups holds assets shared by the checkups binaries.
package checkups

import "embed"

// Migrations contains the goose SQL migrations for the search history schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
