package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"accounting-backend/internal/models"
	"accounting-backend/internal/storage"
)

// InvoiceRepository covers the invoice aggregate and its owned line item
// collection.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(uow *storage.UnitOfWork) *InvoiceRepository {
	return &InvoiceRepository{db: uow.DB()}
}

func (r *InvoiceRepository) Create(customerID uint) (*models.Invoice, error) {
	invoice := &models.Invoice{CustomerID: customerID, Status: models.StatusDraft}
	if err := r.db.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Get loads the invoice with its line items in id order; (nil, nil) when
// absent.
func (r *InvoiceRepository) Get(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&invoice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) ListByCustomer(customerID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&invoices).Error
	return invoices, err
}

// UpdateStatus writes the status exactly as given; validating the
// transition is the service's job. False when the invoice is missing.
func (r *InvoiceRepository) UpdateStatus(id uint, status models.InvoiceStatus) (bool, error) {
	res := r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *InvoiceRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Invoice{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddLineItem inserts and flushes so the id is assigned. Non-positive
// quantity or price is rejected by the store's CHECK constraints, not
// pre-validated here.
func (r *InvoiceRepository) AddLineItem(invoiceID uint, description string, quantity int, unitPrice decimal.Decimal) (*models.LineItem, error) {
	line := &models.LineItem{
		InvoiceID:   invoiceID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	if err := r.db.Create(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

func (r *InvoiceRepository) ListLineItems(invoiceID uint) ([]models.LineItem, error) {
	var items []models.LineItem
	err := r.db.
		Where("invoice_id = ?", invoiceID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *InvoiceRepository) DeleteLineItem(id uint) (bool, error) {
	res := r.db.Delete(&models.LineItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// TotalAmount computes the invoice total in the store without loading the
// line items. It must agree with Invoice.TotalAmount over loaded rows.
// sqlite sums numeric(10,2) in float arithmetic, so the sum is rounded
// back to the schema's scale; on postgres the ROUND is a no-op over an
// already exact numeric.
func (r *InvoiceRepository) TotalAmount(invoiceID uint) (decimal.Decimal, error) {
	row := r.db.Model(&models.LineItem{}).
		Where("invoice_id = ?", invoiceID).
		Select("COALESCE(ROUND(SUM(quantity * unit_price), 2), 0)").
		Row()
	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
