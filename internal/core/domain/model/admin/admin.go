// Package admin models the back-office accounts allowed into the panel.
package admin

import (
	"errors"
	"strings"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// DefaultRole is assigned when no role is given.
const DefaultRole = "admin"

const minPasswordLength = 8

var (
	ErrAdminIsNotConstructed = errors.New("Admin must be created via NewAdmin constructor")
	ErrPasswordMismatch      = errors.New("password does not match")
)

// Admin is an operator account. Only the bcrypt hash of the password is kept.
type Admin struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewAdmin hashes password with bcrypt's default cost.
func NewAdmin(id kernel.UUID, email, password, role string, now time.Time) (*Admin, error) {
	a := &Admin{createdAt: now, updatedAt: now, isConstructed: true}

	var passErr error
	if len(password) < minPasswordLength {
		passErr = errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}

	if err := errors.Join(id.Validate(), a.setEmail(email), passErr); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	a.id = id
	a.passwordHash = string(hash)
	a.role = normalizeRole(role)
	return a, nil
}

// RestoreAdmin rebuilds a stored account around an existing hash.
func RestoreAdmin(id kernel.UUID, email, passwordHash, role string, createdAt, updatedAt time.Time) (*Admin, error) {
	a := &Admin{createdAt: createdAt, updatedAt: updatedAt, isConstructed: true}

	var hashErr error
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password_hash")
	}
	if err := errors.Join(id.Validate(), a.setEmail(email), hashErr); err != nil {
		return nil, err
	}

	a.id = id
	a.passwordHash = passwordHash
	a.role = normalizeRole(role)
	return a, nil
}

// CheckPassword returns ErrPasswordMismatch unless password matches the stored hash.
func (a *Admin) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func (a *Admin) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAdminIsNotConstructed
	}
	return nil
}

func (a *Admin) ID() kernel.UUID { return a.id }
func (a *Admin) Email() string { return a.email }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) Role() string { return a.role }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time { return a.updatedAt }

// NormalizeEmail lower-cases and trims an address so lookups match stored values.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Admin) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func normalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return DefaultRole
	}
	return role
}
