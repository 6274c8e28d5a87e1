package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Opportunity{},
		&models.Postulation{},
		&models.Experience{},
	}
}

// Migrate creates missing tables, columns and indexes, then seeds the
// built-in roles.
func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := SeedRoles(db); err != nil {
		return err
	}
	slog.Info("database migrations completed")
	return nil
}

// SeedRoles inserts the built-in roles when absent. Existing rows, including
// renamed ones, are left untouched.
func SeedRoles(db *gorm.DB) error {
	roles := models.BuiltinRoles()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	// Explicit ids leave the serial sequence behind; realign it so that
	// admin-created roles do not collide with the seeded ones.
	if db.Dialector.Name() == "postgres" {
		err := db.Exec(`SELECT setval(pg_get_serial_sequence('roles', 'id_rol'), (SELECT MAX(id_rol) FROM roles))`).Error
		if err != nil {
			return fmt.Errorf("failed to sync roles sequence: %w", err)
		}
	}
	return nil
}
