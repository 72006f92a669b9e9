package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"accounting-backend/internal/models"
	"accounting-backend/internal/repository"
	"accounting-backend/internal/storage"
)

// InvoiceService enforces the business rules on top of the invoice
// repository and raises domain errors instead of passing absence through.
type InvoiceService struct {
	repo *repository.InvoiceRepository
}

func NewInvoiceService(uow *storage.UnitOfWork) *InvoiceService {
	return &InvoiceService{repo: repository.NewInvoiceRepository(uow)}
}

func (s *InvoiceService) CreateInvoice(customerID uint) (*models.Invoice, error) {
	return s.repo.Create(customerID)
}

// GetInvoice fails with *NotFoundError when the invoice is absent, unlike
// the repository: downstream operations require a concrete invoice.
func (s *InvoiceService) GetInvoice(id uint) (*models.Invoice, error) {
	invoice, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, &NotFoundError{Resource: "invoice", ID: id}
	}
	return invoice, nil
}

// DeleteInvoice has no status-based restriction: an issued or paid invoice
// deletes exactly like a draft.
func (s *InvoiceService) DeleteInvoice(id uint) (bool, error) {
	return s.repo.Delete(id)
}

// AddLineItem attaches the item to whatever invoice id it is given. The
// store's foreign key rejects dangling ids; nothing restricts the invoice
// status here.
func (s *InvoiceService) AddLineItem(invoiceID uint, description string, quantity int, unitPrice decimal.Decimal) (*models.LineItem, error) {
	return s.repo.AddLineItem(invoiceID, description, quantity, unitPrice)
}

// IssueInvoice performs the one status transition in the system,
// draft -> issued. Issuing a missing invoice fails with *NotFoundError,
// issuing a non-draft one with *InvalidOperationError.
func (s *InvoiceService) IssueInvoice(id uint) (*models.Invoice, error) {
	invoice, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != models.StatusDraft {
		return nil, &InvalidOperationError{
			Reason: fmt.Sprintf("cannot issue invoice with status %s", invoice.Status),
		}
	}
	// TODO: decide with product whether issuing should also stamp IssuedAt;
	// the column exists but is currently never written.
	if _, err := s.repo.UpdateStatus(id, models.StatusIssued); err != nil {
		return nil, err
	}
	invoice.Status = models.StatusIssued
	return invoice, nil
}
