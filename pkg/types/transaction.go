package types

import "time"

// Transaction statuses. A transaction progresses pending -> paid ->
// shipped -> delivered; cancellation is allowed from any non-terminal
// status. Delivered and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// validStatuses is the set of recognized transaction status values.
var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// statusOrder maps each fulfillment status to its position in the
// lifecycle. Cancelled is not part of the forward order.
var statusOrder = map[string]int{
	StatusPending:   0,
	StatusPaid:      1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// ValidStatus reports whether status is a recognized transaction status.
func ValidStatus(status string) bool {
	return validStatuses[status]
}

// Transaction represents a completed purchase linking one product and one
// customer. Reference is a unique order code assigned on creation.
// TotalPrice is stored as supplied by the caller; the store does not
// derive it from quantity and product price.
type Transaction struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	ProductID  int64     `json:"product_id"`
	CustomerID int64     `json:"customer_id"`
	Quantity   int64     `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SetStatus advances the transaction to the given status.
// Returns ErrInvalidStatus if the status is not recognized and
// ErrInvalidTransition if the move goes backward or leaves a terminal
// status. Setting the current status is idempotent.
func (t *Transaction) SetStatus(status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	if status == t.Status {
		return nil
	}
	if t.Status == StatusDelivered || t.Status == StatusCancelled {
		return ErrInvalidTransition
	}
	if status == StatusCancelled {
		t.Status = StatusCancelled
		t.UpdatedAt = time.Now()
		return nil
	}
	if statusOrder[status] != statusOrder[t.Status]+1 {
		return ErrInvalidTransition
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the transaction as cancelled.
// Returns ErrInvalidTransition if the transaction is already delivered.
// Idempotent when already cancelled.
func (t *Transaction) Cancel() error {
	if t.Status == StatusCancelled {
		return nil
	}
	return t.SetStatus(StatusCancelled)
}
