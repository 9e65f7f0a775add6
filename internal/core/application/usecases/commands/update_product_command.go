package commands

import (
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the editable fields of an existing product.
// Stock is set to the submitted value, not adjusted by it.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	fields    ProductFields

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID kernel.UUID, fields ProductFields) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(productID.Validate(), fields.Validate()); err != nil {
		return UpdateProductCommand{}, err
	}

	cmd.productID = productID
	cmd.fields = fields
	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c UpdateProductCommand) Fields() ProductFields { return c.fields }
