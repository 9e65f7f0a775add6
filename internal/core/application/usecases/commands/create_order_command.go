package commands

import (
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested (product, quantity) pair from the storefront.
type OrderLine struct {
	ProductID kernel.UUID
	Qty       int
}

// CreateOrderCommand places a new order. Names and prices are read from the
// catalog by the handler; the client only chooses products and quantities.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.Buyer{
//	    Name: "Pingu", Address: "Igloo 4", Email: "pingu@example.com",
//	}, []OrderLine{{ProductID: fishID, Qty: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyer   order.Buyer
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand keeps only lines with a positive quantity and a
// product reference. Buyer name, address and email are required.
func NewCreateOrderCommand(orderID kernel.UUID, buyer order.Buyer, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		buyer.Validate(),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.buyer = buyer
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Buyer() order.Buyer {
	return c.buyer
}

func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	kept := make([]OrderLine, 0, len(lines))
	for _, l := range lines {
		if l.Qty <= 0 || l.ProductID.IsZero() {
			continue
		}
		kept = append(kept, l)
	}
	if len(kept) == 0 {
		return order.ErrOrderHasNoItems
	}
	c.lines = kept
	return nil
}
