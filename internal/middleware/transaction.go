package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"accounting-backend/internal/storage"
)

const unitKey = "unit_of_work"

// BeginFunc opens the unit of work a request will run in. Production wires
// it to Gateway.Begin; tests substitute the isolation harness.
type BeginFunc func(ctx context.Context) (*storage.UnitOfWork, error)

// Transaction gives each request its own unit of work: committed after the
// handler chain runs clean, rolled back when a handler recorded an error
// or a panic unwound. The same guarantees as the gateway's scoped helper,
// expressed as a per-request dependency.
func Transaction(begin BeginFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		uow, err := begin(c.Request.Context())
		if err != nil {
			log.Printf("begin unit of work: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"type":       "internal_error",
					"message":    "Internal server error",
					"request_id": RequestIDFrom(c),
				},
			})
			return
		}
		c.Set(unitKey, uow)

		defer func() {
			if r := recover(); r != nil {
				_ = uow.Rollback()
				panic(r)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			_ = uow.Rollback()
			return
		}
		if err := uow.Commit(); err != nil && !errors.Is(err, storage.ErrFinished) {
			log.Printf("commit unit of work: %v", err)
		}
	}
}

// Unit returns the request's unit of work.
func Unit(c *gin.Context) *storage.UnitOfWork {
	return c.MustGet(unitKey).(*storage.UnitOfWork)
}
