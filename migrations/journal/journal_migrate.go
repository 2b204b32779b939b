package journal

import (
	"database/sql"
	"fmt"
	"log"
)

type CreateMigrationsSchema struct{}

func (m *CreateMigrationsSchema) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS migrations;`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema migrations: %w", err)
	}
	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS migrations.migrations (
            id SERIAL PRIMARY KEY,
            time TIMESTAMP NOT NULL,
            name VARCHAR(255) UNIQUE NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

type CreateSyncSchema struct{}

func (m *CreateSyncSchema) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS sync;`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema sync: %w", err)
	}
	return nil
}

type CreateSyncRunsTable struct{}

func (m *CreateSyncRunsTable) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, "sync.runs"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS sync.runs (
		run_id UUID PRIMARY KEY,
		marketplace VARCHAR(32) NOT NULL,
		campaign VARCHAR(32) NOT NULL DEFAULT '',
		started_at TIMESTAMP WITH TIME ZONE NOT NULL,
		finished_at TIMESTAMP WITH TIME ZONE NOT NULL,
		offers_total INT NOT NULL DEFAULT 0,
		stocks_sent INT NOT NULL DEFAULT 0,
		prices_sent INT NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL,
		error TEXT NOT NULL DEFAULT ''
	);`
	if err := executeAndMarkMigration(db, query, "sync.runs"); err != nil {
		return err
	}
	log.Println("Migration 'sync.runs' completed successfully.")
	return nil
}

func checkAndSkipMigration(db *sql.DB, migrationName string) (bool, error) {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)", migrationName).Scan(&migrationExists)
	if err != nil {
		return migrationExists, fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Printf("Migration '%s' already completed. Skipping.\n", migrationName)
		return migrationExists, nil
	}
	return migrationExists, nil
}

func executeAndMarkMigration(db *sql.DB, query string, migrationName string) error {
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to execute migration '%s': %w", migrationName, err)
	}
	_, err = db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)", migrationName)
	if err != nil {
		return fmt.Errorf("failed to mark migration '%s' as complete: %w", migrationName, err)
	}
	return nil
}
