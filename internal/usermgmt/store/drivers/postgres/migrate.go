package postgres

import (
	"errors"

	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies any pending migrations from the embedded
// migrations directory.
func (s *Store) ApplyMigrations() error {
	driver, err := pgmigrate.WithInstance(s.db.DB, &pgmigrate.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
