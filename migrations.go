// Package tracker holds assets embedded into the tracker binaries.
package tracker

import "embed"

// Migrations holds the goose SQL migrations of the locality gazetteer.
//
//go:embed migrations/*.sql
var Migrations embed.FS
