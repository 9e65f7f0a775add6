package commands

import (
	"errors"

	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
	"penguinadmin/internal/pkg/guard"
)

var (
	ErrCreateAdminCommandIsNotConstructed = errors.New(
		"CreateAdminCommand must be created via NewCreateAdminCommand constructor",
	)
	ErrAdminAlreadyExists = errors.New("admin already exists")
)

// CreateAdminCommand seeds an operator account. The password is hashed by the domain.
type CreateAdminCommand struct { //nolint:recvcheck //using for validation
	adminID  kernel.UUID
	email    string
	password string
	role     string

	guard guard.ConstructorGuard
}

func NewCreateAdminCommand(adminID kernel.UUID, email, password, role string) (CreateAdminCommand, error) {
	var emailErr, passErr error
	if admin.NormalizeEmail(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(adminID.Validate(), emailErr, passErr); err != nil {
		return CreateAdminCommand{}, err
	}

	return CreateAdminCommand{
		adminID:  adminID,
		email:    admin.NormalizeEmail(email),
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAdminCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdminCommandIsNotConstructed)
}

func (c CreateAdminCommand) AdminID() kernel.UUID { return c.adminID }
func (c CreateAdminCommand) Email() string { return c.email }
func (c CreateAdminCommand) Password() string { return c.password }
func (c CreateAdminCommand) Role() string { return c.role }
