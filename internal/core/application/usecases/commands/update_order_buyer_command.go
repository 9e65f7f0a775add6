package commands

import (
	"errors"
	"strings"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
	"penguinadmin/internal/pkg/guard"
)

var ErrUpdateOrderBuyerCommandIsNotConstructed = errors.New(
	"UpdateOrderBuyerCommand must be created via NewUpdateOrderBuyerCommand constructor",
)

// UpdateOrderBuyerCommand corrects the buyer name and delivery address of an
// order that has not been picked up yet.
type UpdateOrderBuyerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	buyerName string
	address   string

	guard guard.ConstructorGuard
}

func NewUpdateOrderBuyerCommand(orderID kernel.UUID, buyerName, address string) (UpdateOrderBuyerCommand, error) {
	cmd := UpdateOrderBuyerCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerName(buyerName),
		cmd.setAddress(address),
	); err != nil {
		return UpdateOrderBuyerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderBuyerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderBuyerCommandIsNotConstructed)
}

func (c UpdateOrderBuyerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderBuyerCommand) BuyerName() string {
	return c.buyerName
}

func (c UpdateOrderBuyerCommand) Address() string {
	return c.address
}

func (c *UpdateOrderBuyerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderBuyerCommand) setBuyerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("buyer_name")
	}
	c.buyerName = name
	return nil
}

func (c *UpdateOrderBuyerCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
