package accounting

import "fmt"

// NotFoundError reports that a requested aggregate does not exist. The
// HTTP layer maps it to a 404 response.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// InvalidOperationError reports a business-rule violation, such as issuing
// an invoice that is no longer a draft. The HTTP layer maps it to a 409.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}
