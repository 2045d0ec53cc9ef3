// Package sqlite embeds the directory schema and applies it with darwin.
package sqlite

import (
	"database/sql"
	"embed"
	"strings"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

const schemaDir = "sql"

// Migrate brings the directory schema up to date
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(schemaFiles, schemaDir, sqlmigrator.WithDescriptionProcessor(describe))
}

func describe(filename, instruction string) string {
	return strings.TrimSuffix(filename, ".sql") + ": " + sqlmigrator.ExtractActionDescription(instruction)
}
