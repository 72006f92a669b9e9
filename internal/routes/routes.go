package routes

import (
	"github.com/gin-gonic/gin"

	handler "accounting-backend/internal/handlers"
	"accounting-backend/internal/middleware"
)

// RegisterRoutes wires the HTTP surface. Every data route runs inside a
// per-request unit of work; the two create endpoints sit behind the shared
// API key.
func RegisterRoutes(r *gin.Engine, begin middleware.BeginFunc, apiKey string) {
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	tx := middleware.Transaction(begin)
	customerHandler := handler.NewCustomerHandler()
	invoiceHandler := handler.NewInvoiceHandler()

	customers := r.Group("/customers", tx)
	customers.POST("", middleware.APIKey(apiKey), customerHandler.CreateCustomer)
	customers.GET("", customerHandler.ListCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.DELETE("/:id", customerHandler.DeleteCustomer)

	invoices := r.Group("/invoices", tx)
	invoices.POST("", middleware.APIKey(apiKey), invoiceHandler.CreateInvoice)
	invoices.GET("/:id", invoiceHandler.GetInvoice)
	invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
	invoices.POST("/:id/items", invoiceHandler.AddLineItem)
	invoices.POST("/:id/issue", invoiceHandler.IssueInvoice)
}
