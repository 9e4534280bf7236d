package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var FS embed.FS

var (
	// ErrMigrate возвращается при ошибке применения миграций
	ErrMigrate = errors.New("migrations: failed to apply migrations")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет встроенные SQL миграции к PostgreSQL
type Migrator struct {
	m      *migrate.Migrate
	logger Logger
}

// New создает мигратор поверх открытого соединения
func New(db *sql.DB, logger Logger) (*Migrator, error) {
	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: New - db driver: %v", ErrMigrate, err)
	}

	srcDriver, err := iofs.New(FS, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: New - source driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("%w: New - create migrator: %v", ErrMigrate, err)
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Up применяет все новые миграции. Отсутствие изменений не считается ошибкой
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.logger.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: Up: %v", ErrMigrate, err)
	}

	mg.logger.Info("Migrations: applied successfully")
	return nil
}

// Down откатывает все миграции
func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: Down: %v", ErrMigrate, err)
	}

	mg.logger.Info("Migrations: rolled back")
	return nil
}

// Force выставляет версию схемы без применения миграций
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("%w: Force: %v", ErrMigrate, err)
	}

	mg.logger.Info("Migrations: forced version to %d", version)
	return nil
}

// Version возвращает текущую версию схемы
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: Version: %v", ErrMigrate, err)
	}
	return version, dirty, nil
}

// Close закрывает источник миграций. Соединение с БД закрывается вызывающим кодом
func (mg *Migrator) Close() error {
	srcErr, _ := mg.m.Close()
	return srcErr
}
