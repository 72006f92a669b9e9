package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"accounting-backend/internal/middleware"
	"accounting-backend/internal/models"
	"accounting-backend/internal/services/accounting"
)

type createInvoiceRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
}

type addLineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// invoiceResponse carries the derived total alongside every invoice read.
type invoiceResponse struct {
	ID          uint                 `json:"id"`
	CustomerID  uint                 `json:"customer_id"`
	Status      models.InvoiceStatus `json:"status"`
	IssuedAt    *time.Time           `json:"issued_at"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	LineItems   []models.LineItem    `json:"line_items"`
}

func newInvoiceResponse(invoice *models.Invoice) invoiceResponse {
	items := invoice.LineItems
	if items == nil {
		items = []models.LineItem{}
	}
	return invoiceResponse{
		ID:          invoice.ID,
		CustomerID:  invoice.CustomerID,
		Status:      invoice.Status,
		IssuedAt:    invoice.IssuedAt,
		TotalAmount: invoice.TotalAmount(),
		LineItems:   items,
	}
}

// InvoiceHandler serves the invoice and line item routes.
type InvoiceHandler struct{}

func NewInvoiceHandler() *InvoiceHandler {
	return &InvoiceHandler{}
}

func (h *InvoiceHandler) service(c *gin.Context) *accounting.InvoiceService {
	return accounting.NewInvoiceService(middleware.Unit(c))
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload createInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	invoice, err := h.service(c).CreateInvoice(payload.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newInvoiceResponse(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	invoice, err := h.service(c).GetInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInvoiceResponse(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.service(c).DeleteInvoice(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvoiceHandler) AddLineItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var payload addLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.UnitPrice.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_price must be greater than zero"})
		return
	}

	line, err := h.service(c).AddLineItem(id, payload.Description, payload.Quantity, payload.UnitPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	invoice, err := h.service(c).IssueInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInvoiceResponse(invoice))
}
