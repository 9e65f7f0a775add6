package commands

import (
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a catalog entry, optionally with an already stored image.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	fields    ProductFields
	imagePath string

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(productID kernel.UUID, fields ProductFields, imagePath string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(productID.Validate(), fields.Validate()); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.productID = productID
	cmd.fields = fields
	cmd.imagePath = imagePath
	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Fields() ProductFields { return c.fields }
func (c CreateProductCommand) ImagePath() string { return c.imagePath }
