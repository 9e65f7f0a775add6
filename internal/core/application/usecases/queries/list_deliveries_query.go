package queries

import (
	"errors"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery lists the delivered history, newest delivery first.
type ListDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// DeliveryView is one archived order. Items are the snapshot taken at
// finalization, in their original order.
type DeliveryView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	BuyerName   string
	Address     string
	Sector      string
	Email       string
	Total       kernel.Money
	Status      string
	DeliveredAt time.Time
	Day         string
	Items       []ItemView
}

// Units is the number of units handed over in this delivery.
func (d DeliveryView) Units() int {
	var n int
	for _, it := range d.Items {
		n += it.Qty
	}
	return n
}
