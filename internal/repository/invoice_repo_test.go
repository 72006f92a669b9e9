package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounting-backend/internal/models"
	"accounting-backend/internal/repository"
	"accounting-backend/internal/storage"
	"accounting-backend/internal/storage/storagetest"
)

func seedInvoice(t *testing.T, uow *storage.UnitOfWork) (*repository.InvoiceRepository, *models.Invoice) {
	t.Helper()
	customers := repository.NewCustomerRepository(uow)
	invoices := repository.NewInvoiceRepository(uow)

	customer, err := customers.Create("Ali", nil)
	require.NoError(t, err)
	invoice, err := invoices.Create(customer.ID)
	require.NoError(t, err)
	return invoices, invoice
}

func TestInvoiceCreateStartsAsDraft(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	assert.NotZero(t, invoice.ID)
	assert.Equal(t, models.StatusDraft, invoice.Status)
	assert.Nil(t, invoice.IssuedAt)

	list, err := invoices.ListByCustomer(invoice.CustomerID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInvoiceAbsenceContract(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices := repository.NewInvoiceRepository(uow)

	got, err := invoices.Get(9999)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err := invoices.Delete(9999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// The in-process sum over loaded items and the server-side aggregate are
// two implementations of the same derived value; they must always agree.
func TestTotalAmountBothPathsAgree(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	_, err := invoices.AddLineItem(invoice.ID, "A", 2, decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = invoices.AddLineItem(invoice.ID, "B", 1, decimal.NewFromInt(5))
	require.NoError(t, err)

	reloaded, err := invoices.Get(invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	require.Len(t, reloaded.LineItems, 2)

	want := decimal.NewFromInt(25)
	inProcess := reloaded.TotalAmount()
	assert.True(t, inProcess.Equal(want), "in-process total: got %s", inProcess)

	aggregated, err := invoices.TotalAmount(invoice.ID)
	require.NoError(t, err)
	assert.True(t, aggregated.Equal(want), "server-side total: got %s", aggregated)
	assert.True(t, aggregated.Equal(inProcess))
}

// Fractional prices are where the two paths can drift apart: the store
// sums numeric(10,2) in float arithmetic on sqlite (3 x 0.10 comes out as
// 0.30000000000000004 unrounded), while the in-process fold is exact.
func TestTotalAmountAgreesForFractionalPrices(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	_, err := invoices.AddLineItem(invoice.ID, "A", 3, decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	_, err = invoices.AddLineItem(invoice.ID, "B", 7, decimal.RequireFromString("19.99"))
	require.NoError(t, err)

	reloaded, err := invoices.Get(invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)

	want := decimal.RequireFromString("140.23")
	inProcess := reloaded.TotalAmount()
	assert.True(t, inProcess.Equal(want), "in-process total: got %s", inProcess)

	aggregated, err := invoices.TotalAmount(invoice.ID)
	require.NoError(t, err)
	assert.True(t, aggregated.Equal(want), "server-side total: got %s", aggregated)
	assert.True(t, aggregated.Equal(inProcess))
}

func TestTotalAmountEmptyInvoiceIsZero(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	total, err := invoices.TotalAmount(invoice.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestLineItemsListedInInsertionOrder(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	for _, desc := range []string{"first", "second", "third"} {
		_, err := invoices.AddLineItem(invoice.ID, desc, 1, decimal.NewFromInt(1))
		require.NoError(t, err)
	}

	items, err := invoices.ListLineItems(invoice.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Description)
	assert.Equal(t, "second", items[1].Description)
	assert.Equal(t, "third", items[2].Description)
}

func TestDeleteInvoiceCascadesToLineItems(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	_, err := invoices.AddLineItem(invoice.ID, "A", 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = invoices.AddLineItem(invoice.ID, "B", 2, decimal.NewFromInt(5))
	require.NoError(t, err)

	deleted, err := invoices.Delete(invoice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	items, err := invoices.ListLineItems(invoice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteCustomerCascadesToInvoicesAndLineItems(t *testing.T) {
	uow := storagetest.Begin(t)
	customers := repository.NewCustomerRepository(uow)
	invoices := repository.NewInvoiceRepository(uow)

	customer, err := customers.Create("Ali", nil)
	require.NoError(t, err)

	var invoiceIDs []uint
	for i := 0; i < 2; i++ {
		invoice, err := invoices.Create(customer.ID)
		require.NoError(t, err)
		invoiceIDs = append(invoiceIDs, invoice.ID)
		for j := 0; j < 3; j++ {
			_, err := invoices.AddLineItem(invoice.ID, "item", 1, decimal.NewFromInt(int64(j+1)))
			require.NoError(t, err)
		}
	}

	deleted, err := customers.Delete(customer.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	remaining, err := invoices.ListByCustomer(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	for _, id := range invoiceIDs {
		items, err := invoices.ListLineItems(id)
		require.NoError(t, err)
		assert.Empty(t, items)
	}
}

func TestUpdateStatusPerformsNoValidation(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	// Straight to paid, skipping issued: allowed here, guarding
	// transitions is the service's job.
	ok, err := invoices.UpdateStatus(invoice.ID, models.StatusPaid)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := invoices.Get(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, reloaded.Status)

	ok, err = invoices.UpdateStatus(9999, models.StatusIssued)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddLineItemRejectsNonPositiveValues(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	_, err := invoices.AddLineItem(invoice.ID, "ok", 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = invoices.AddLineItem(invoice.ID, "zero qty", 0, decimal.NewFromInt(10))
	require.Error(t, err)

	_, err = invoices.AddLineItem(invoice.ID, "zero price", 1, decimal.Zero)
	require.Error(t, err)

	items, err := invoices.ListLineItems(invoice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "failed inserts must not change the collection")
}

func TestAddLineItemRejectsDanglingInvoice(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices := repository.NewInvoiceRepository(uow)

	_, err := invoices.AddLineItem(9999, "orphan", 1, decimal.NewFromInt(1))
	require.Error(t, err)
}

func TestDeleteLineItem(t *testing.T) {
	uow := storagetest.Begin(t)
	invoices, invoice := seedInvoice(t, uow)

	line, err := invoices.AddLineItem(invoice.ID, "A", 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	deleted, err := invoices.DeleteLineItem(line.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = invoices.DeleteLineItem(line.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
