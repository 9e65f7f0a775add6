package queries

import (
	"errors"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the active orders, newest first, optionally narrowed to
// one status.
//
// Example:
//
//	query, err := NewListOrdersQuery(c.QueryParam("status"))
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty filter for "all statuses".
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if err := q.setStatus(status); err != nil {
		return ListOrdersQuery{}, err
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status is nil when no filter applies.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *ListOrdersQuery) setStatus(label string) error {
	if label == "" {
		return nil
	}
	s, err := order.ParseStatus(label)
	if err != nil {
		return err
	}
	q.status = &s
	return nil
}

// OrderSummary is one row of the orders table view.
type OrderSummary struct {
	ID        kernel.UUID
	BuyerName string
	Email     string
	Sector    string
	Status    order.Status
	Total     kernel.Money
	ItemCount int
	CreatedAt time.Time
}
