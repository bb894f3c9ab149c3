package db

import "embed"

// Migrations holds the schema files applied by cmd/migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
