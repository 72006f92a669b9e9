package storage

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accounting-backend/internal/models"
)

// Gateway owns the physical engine for the process and hands out units of
// work bound to it. Repositories and services never see the engine, only
// the unit they were given.
type Gateway struct {
	db *gorm.DB
}

// Open builds the engine for the configured driver. SQLite DSNs get
// foreign-key enforcement turned on explicitly: the driver ships with it
// off, and cascading deletes depend on it.
func Open(driver, dsn string) (*Gateway, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(withForeignKeys(dsn))
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return &Gateway{db: db}, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// DB exposes the root handle for migration and test wiring.
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

func (g *Gateway) Migrate() error {
	return g.db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.LineItem{},
	)
}

func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Begin opens a new unit of work on its own transaction. The caller owns
// it and must end it exactly once.
func (g *Gateway) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return newUnitOfWork(tx), nil
}

// WithUnitOfWork is the scoped form for callers outside the request
// lifecycle (scripts, seed jobs): it commits when fn returns nil, rolls
// back and re-returns on error, and rolls back before re-panicking when fn
// panics. The connection is released in every case.
func (g *Gateway) WithUnitOfWork(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	uow, err := g.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback()
			panic(r)
		}
	}()
	if err := fn(uow); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}
