package queries

import (
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
	"penguinadmin/internal/pkg/guard"
)

var ErrAuthenticateAdminQueryIsNotConstructed = errors.New(
	"AuthenticateAdminQuery must be created via NewAuthenticateAdminQuery constructor",
)

// AuthenticateAdminQuery checks login credentials. It reads but never writes,
// so it lives on the query side.
type AuthenticateAdminQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateAdminQuery(email, password string) (AuthenticateAdminQuery, error) {
	q := AuthenticateAdminQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(q.setEmail(email), q.setPassword(password)); err != nil {
		return AuthenticateAdminQuery{}, err
	}
	return q, nil
}

func (q AuthenticateAdminQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAdminQueryIsNotConstructed)
}

func (q AuthenticateAdminQuery) Email() string    { return q.email }
func (q AuthenticateAdminQuery) Password() string { return q.password }

func (q *AuthenticateAdminQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *AuthenticateAdminQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

// AuthenticatedAdmin is what the session token is minted from.
type AuthenticatedAdmin struct {
	ID    kernel.UUID
	Email string
	Role  string
}
