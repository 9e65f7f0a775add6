package commands

import (
	"errors"

	"penguinadmin/internal/pkg/guard"
)

var ErrPurgeLegacyOrdersCommandIsNotConstructed = errors.New(
	"PurgeLegacyOrdersCommand must be created via NewPurgeLegacyOrdersCommand constructor",
)

// PurgeLegacyOrdersCommand removes orders having any item stored without a
// product reference. This is a parameterless maintenance command.
type PurgeLegacyOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeLegacyOrdersCommand() PurgeLegacyOrdersCommand {
	return PurgeLegacyOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c PurgeLegacyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeLegacyOrdersCommandIsNotConstructed)
}
