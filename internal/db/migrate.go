package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"foodshare/db/migrations"
)

// migrator is the part of *migrate.Migrate that Migrate drives.
type migrator interface {
	Version() (version uint, dirty bool, err error)
	Migrate(version uint) error
}

// Migrate brings the schema at addr to migrations.Version using the
// embedded SQL files.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, to, err := migrateTo(mg, migrations.Version)
	if err != nil {
		return err
	}
	if from == to {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(to)))
		return nil
	}
	logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(to)))
	return nil
}

// migrateTo moves m to target and reports the versions before and after.
// Dirty schemas and schemas newer than target are refused.
func migrateTo(m migrator, target uint) (from, to uint, err error) {
	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return from, from, fmt.Errorf("schema is dirty at version %d", from)
	case from > target:
		return from, from, fmt.Errorf("schema version %d is newer than supported version %d", from, target)
	}
	if err = m.Migrate(target); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, from, fmt.Errorf("migrate %d to %d: %w", from, target, err)
	}
	return from, target, nil
}
