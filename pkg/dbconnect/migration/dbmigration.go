package migration

import "database/sql"

// MigrationInterface — одна идемпотентная миграция схемы.
type MigrationInterface interface {
	UpMigration(*sql.DB) error
}

// ApplyAll прогоняет миграции по порядку и останавливается на первой ошибке.
func ApplyAll(db *sql.DB, migrations ...MigrationInterface) error {
	for _, m := range migrations {
		if err := m.UpMigration(db); err != nil {
			return err
		}
	}
	return nil
}
