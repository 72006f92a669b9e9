// One-off demo data seeding.
//
// Runs outside the request lifecycle, so it goes through the gateway's
// scoped unit of work: commit on success, rollback on any error.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"accounting-backend/internal/config"
	"accounting-backend/internal/models"
	"accounting-backend/internal/repository"
	"accounting-backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()

	gateway, err := storage.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := gateway.Migrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	err = gateway.WithUnitOfWork(context.Background(), func(uow *storage.UnitOfWork) error {
		customers := repository.NewCustomerRepository(uow)
		invoices := repository.NewInvoiceRepository(uow)

		email := "demo@example.com"
		customer, err := customers.Create("Demo Customer", &email)
		if err != nil {
			return err
		}

		invoice, err := invoices.Create(customer.ID)
		if err != nil {
			return err
		}

		if _, err := invoices.AddLineItem(invoice.ID, "Consulting services", 10, decimal.NewFromInt(150)); err != nil {
			return err
		}
		if _, err := invoices.AddLineItem(invoice.ID, "Support services", 5, decimal.NewFromInt(80)); err != nil {
			return err
		}

		_, err = invoices.UpdateStatus(invoice.ID, models.StatusIssued)
		return err
	})
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("Demo data successfully seeded.")
}
