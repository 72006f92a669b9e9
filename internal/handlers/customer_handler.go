package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accounting-backend/internal/middleware"
	"accounting-backend/internal/services/accounting"
)

type createCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// CustomerHandler serves the customer routes. It holds no state of its
// own; the service is rebuilt per request from the request's unit of work.
type CustomerHandler struct{}

func NewCustomerHandler() *CustomerHandler {
	return &CustomerHandler{}
}

func (h *CustomerHandler) service(c *gin.Context) *accounting.CustomerService {
	return accounting.NewCustomerService(middleware.Unit(c))
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload createCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	customer, err := h.service(c).CreateCustomer(payload.Name, payload.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	customer, err := h.service(c).GetCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if customer == nil {
		respondError(c, &accounting.NotFoundError{Resource: "customer", ID: id})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service(c).ListCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.service(c).DeleteCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		respondError(c, &accounting.NotFoundError{Resource: "customer", ID: id})
		return
	}
	c.Status(http.StatusNoContent)
}
