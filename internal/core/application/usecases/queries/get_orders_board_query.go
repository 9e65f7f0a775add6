package queries

import (
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/guard"
)

var ErrGetOrdersBoardQueryIsNotConstructed = errors.New(
	"GetOrdersBoardQuery must be created via NewGetOrdersBoardQuery constructor",
)

// shortIDLen is how many trailing characters of the order id the board shows.
const shortIDLen = 4

// GetOrdersBoardQuery reads the public board of active orders, oldest first.
// It carries no prices, emails or addresses.
type GetOrdersBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersBoardQuery() GetOrdersBoardQuery {
	return GetOrdersBoardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersBoardQueryIsNotConstructed)
}

type BoardItem struct {
	Name string
	Qty  int
}

// BoardOrder is one card of the public board.
type BoardOrder struct {
	ID        kernel.UUID
	ShortID   string
	BuyerName string
	Status    order.Status
	Items     []BoardItem
}

// ShortID is the tail of the order id shown to buyers looking for their order.
func ShortID(id kernel.UUID) string {
	s := id.String()
	if len(s) <= shortIDLen {
		return s
	}
	return s[len(s)-shortIDLen:]
}
