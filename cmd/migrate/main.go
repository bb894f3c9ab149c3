package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"donorlink-web/internal/db"
	"donorlink-web/internal/logger"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()
	log := logger.L()

	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "", "read migrations from this directory instead of the embedded set")
	flag.Parse()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatal("failed to connect db", zap.Error(err))
	}
	defer database.Close()

	if err := run(database, *mode, migrationSource(*dir)); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}

func migrationSource(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(db.Migrations, "migrations")
	if err != nil {
		// the embedded directory always exists
		panic(err)
	}
	return sub
}

func run(database *sql.DB, mode string, migrations fs.FS) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)

	switch mode {
	case "up":
		return runMigrationsUp(database, migrations, files)
	case "down":
		return runMigrationsDown(database, migrations, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func runMigrationsUp(database *sql.DB, migrations fs.FS, files []string) error {
	log := logger.L()

	for _, file := range files {
		version := path.Base(file)

		var exists bool
		err := database.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Debug("skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		log.Info("applying migration", zap.String("version", version))
		if _, err := database.Exec(extractMigrationPart(string(content), "Up")); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}

		if _, err := database.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}

	log.Info("all new migrations applied")
	return nil
}

func runMigrationsDown(database *sql.DB, migrations fs.FS, files []string) error {
	log := logger.L()

	var lastVersion string
	err := database.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	file := ""
	for _, f := range files {
		if path.Base(f) == lastVersion {
			file = f
			break
		}
	}
	if file == "" {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := fs.ReadFile(migrations, file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	log.Info("rolling back migration", zap.String("version", lastVersion))
	if _, err := database.Exec(extractMigrationPart(string(content), "Down")); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", file, err)
	}

	if _, err := database.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	log.Info("rollback successful", zap.String("version", lastVersion))
	return nil
}

// extractMigrationPart returns the statements between "-- +migrate <section>"
// and the next marker.
func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	var inPart bool

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
