package commands

import (
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/guard"
)

var ErrFinalizeDeliveryCommandIsNotConstructed = errors.New(
	"FinalizeDeliveryCommand must be created via NewFinalizeDeliveryCommand constructor",
)

// FinalizeDeliveryCommand asks to mark an order as delivered: take its items out
// of stock, archive it as a Delivery and remove it from the active orders.
//
// Example:
//
//	cmd, err := NewFinalizeDeliveryCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, cmd)
type FinalizeDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFinalizeDeliveryCommand(orderID kernel.UUID) (FinalizeDeliveryCommand, error) {
	cmd := FinalizeDeliveryCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setOrderID(orderID); err != nil {
		return FinalizeDeliveryCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeDeliveryCommandIsNotConstructed)
}

func (c FinalizeDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FinalizeDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
