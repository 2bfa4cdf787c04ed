package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrator applies the journal schema with golang-migrate. Migrations ship inside the binary.
type Migrator struct {
	dsn string
}

func NewMigrator(dsn string) (*Migrator, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}
	return &Migrator{dsn: dsn}, nil
}

// Up applies all pending migrations. Cancelling ctx stops after the migration in progress.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Up() })
}

// Down rolls back one migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Steps(-1) })
}

// Version reports the applied schema version. dirty is set when a migration failed halfway.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, err error) {
	err = m.run(ctx, func(mig *migrate.Migrate) error {
		version, dirty, err = mig.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return err
	})
	return version, dirty, err
}

func (m *Migrator) run(ctx context.Context, fn func(*migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mig, closer, err := m.migrateInstance()
	if err != nil {
		return err
	}
	defer closer()
	release := stopOnDone(ctx, mig.GracefulStop)
	defer release()
	if err := fn(mig); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return ErrNoChange
		}
		return err
	}
	return nil
}

func (m *Migrator) migrateInstance() (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, func() {}, fmt.Errorf("open embedded migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.dsn)
	if err != nil {
		return nil, func() {}, err
	}
	return mig, func() { mig.Close() }, nil
}

// stopOnDone signals stop once ctx is done. The returned func ends the watch and must be called.
func stopOnDone(ctx context.Context, stop chan<- bool) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			select {
			case stop <- true:
			default:
			}
		case <-done:
		}
	}()
	return func() { close(done) }
}
