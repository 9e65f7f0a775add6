package queries

import (
	"errors"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one active order with its line items for the detail page.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	q.orderID = orderID
	return q, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ItemView is a line item as shown to the operator. ProductID is nil for
// legacy items stored without a product reference.
type ItemView struct {
	ProductID *kernel.UUID
	Name      string
	Qty       int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

type OrderDetail struct {
	ID        kernel.UUID
	Buyer     order.Buyer
	Status    order.Status
	Total     kernel.Money
	CreatedAt time.Time
	Items     []ItemView
}
