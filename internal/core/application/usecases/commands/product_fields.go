package commands

import (
	"errors"
	"fmt"
	"strings"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

// ProductFields are the editable catalog attributes shared by create and update.
type ProductFields struct {
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
	IsActive    bool
}

// Validate requires a name, a constructed non-negative price and non-negative stock.
func (f ProductFields) Validate() error {
	var problems []error
	if strings.TrimSpace(f.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if err := f.Price.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", err))
	}
	if f.Stock < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", f.Stock)))
	}
	return errors.Join(problems...)
}
