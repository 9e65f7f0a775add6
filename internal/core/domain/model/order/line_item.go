package order

import (
	"errors"
	"fmt"
	"strings"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

// LineItem is one product entry of an order, holding a snapshot of the name and
// unit price at checkout time. ProductID is zero for legacy items that were
// stored without a product reference.
type LineItem struct {
	productID kernel.UUID
	name      string
	qty       int
	unitPrice kernel.Money
	subtotal  kernel.Money
}

// NewLineItem computes the subtotal as qty × unitPrice.
func NewLineItem(productID kernel.UUID, name string, qty int, unitPrice kernel.Money) (LineItem, error) {
	if err := validateLine(name, qty, unitPrice); err != nil {
		return LineItem{}, err
	}

	subtotal, err := unitPrice.Times(qty)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		name:      strings.TrimSpace(name),
		qty:       qty,
		unitPrice: unitPrice,
		subtotal:  subtotal,
	}, nil
}

// RestoreLineItem rebuilds a stored item verbatim, subtotal included.
func RestoreLineItem(productID kernel.UUID, name string, qty int, unitPrice, subtotal kernel.Money) (LineItem, error) {
	if err := validateLine(name, qty, unitPrice); err != nil {
		return LineItem{}, err
	}
	if err := subtotal.Validate(); err != nil {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("subtotal", err)
	}

	return LineItem{
		productID: productID,
		name:      name,
		qty:       qty,
		unitPrice: unitPrice,
		subtotal:  subtotal,
	}, nil
}

func validateLine(name string, qty int, unitPrice kernel.Money) error {
	var problems []error
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item name"))
	}
	if qty < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("qty", qty, 1, "unbounded"))
	}
	if err := unitPrice.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("unit_price", err))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("line item: %w", errors.Join(problems...))
}

func (i LineItem) ProductID() kernel.UUID { return i.productID }
func (i LineItem) Name() string { return i.name }
func (i LineItem) Qty() int { return i.qty }
func (i LineItem) UnitPrice() kernel.Money { return i.unitPrice }
func (i LineItem) Subtotal() kernel.Money { return i.subtotal }

// HasProductRef is false for legacy items resolved by name.
func (i LineItem) HasProductRef() bool {
	return !i.productID.IsZero()
}

// Identifier is the reference used in error messages: the product id when
// present, otherwise the snapshot name.
func (i LineItem) Identifier() string {
	if i.HasProductRef() {
		return i.productID.String()
	}
	return i.name
}

func (i LineItem) IsEqual(other LineItem) bool {
	return i.productID.IsEqual(other.productID) &&
		i.name == other.name &&
		i.qty == other.qty &&
		i.unitPrice.IsEqual(other.unitPrice) &&
		i.subtotal.IsEqual(other.subtotal)
}
