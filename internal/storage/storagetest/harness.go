// Package storagetest lets repeated test runs execute arbitrary commits
// against a real relational backend without cross-test interference.
//
// Each test gets a unit of work wrapped in an outer transaction plus an
// auto-restarting savepoint: every Commit issued by code under test only
// cycles the savepoint, and the outer transaction is rolled back at
// cleanup, leaving the database pristine for the next test.
package storagetest

import (
	"log"
	"testing"

	"accounting-backend/internal/models"
	"accounting-backend/internal/storage"
)

// The whole run shares one in-memory engine on a single connection,
// independent of any production engine.
const testDSN = "file:accounting_test?mode=memory&cache=shared"

var shared *storage.Gateway

// Main wraps testing.M for packages whose tests hit the database:
//
//	func TestMain(m *testing.M) { os.Exit(storagetest.Main(m)) }
//
// It opens the test engine, creates the schema once before the first test
// and drops it after the last.
func Main(m *testing.M) int {
	gw, err := storage.Open("sqlite", testDSN)
	if err != nil {
		log.Fatalf("storagetest: open engine: %v", err)
	}
	sqlDB, err := gw.DB().DB()
	if err != nil {
		log.Fatalf("storagetest: underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gw.Migrate(); err != nil {
		log.Fatalf("storagetest: migrate: %v", err)
	}
	shared = gw

	code := m.Run()

	_ = gw.DB().Migrator().DropTable(
		&models.LineItem{},
		&models.Invoice{},
		&models.Customer{},
	)
	_ = gw.Close()
	return code
}

// Begin hands the test an isolated unit of work. Everything done through
// it, including explicit commits, is discarded when the test ends.
func Begin(t *testing.T) *storage.UnitOfWork {
	t.Helper()
	if shared == nil {
		t.Fatal("storagetest: no engine; add a TestMain that calls storagetest.Main")
	}

	outer := shared.DB().Begin()
	if outer.Error != nil {
		t.Fatalf("storagetest: begin outer transaction: %v", outer.Error)
	}

	uow, err := storage.NewNested(outer)
	if err != nil {
		_ = outer.Rollback()
		t.Fatalf("storagetest: begin savepoint: %v", err)
	}

	t.Cleanup(func() {
		uow.Close()
		_ = outer.Rollback()
	})
	return uow
}
