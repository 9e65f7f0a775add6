package commands

import (
	"errors"
	"strings"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
	"penguinadmin/internal/pkg/guard"
)

var ErrSetProductImageCommandIsNotConstructed = errors.New(
	"SetProductImageCommand must be created via NewSetProductImageCommand constructor",
)

// SetProductImageCommand points a product at an uploaded picture.
// ImagePath is the public path of a file the transport already stored.
type SetProductImageCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	imagePath string

	guard guard.ConstructorGuard
}

func NewSetProductImageCommand(productID kernel.UUID, imagePath string) (SetProductImageCommand, error) {
	var pathErr error
	if strings.TrimSpace(imagePath) == "" {
		pathErr = errs.NewValueIsRequiredError("image_path")
	}
	if err := errors.Join(productID.Validate(), pathErr); err != nil {
		return SetProductImageCommand{}, err
	}
	return SetProductImageCommand{productID: productID, imagePath: imagePath, guard: guard.NewConstructorGuard()}, nil
}

func (c SetProductImageCommand) Validate() error {
	return c.guard.Validate(ErrSetProductImageCommandIsNotConstructed)
}

func (c SetProductImageCommand) ProductID() kernel.UUID { return c.productID }
func (c SetProductImageCommand) ImagePath() string { return c.imagePath }
