package order

import (
	"errors"
	"strings"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that bypassed NewOrder/RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrOrderNotEditable is returned when the buyer edits an order that has
	// already left the New status.
	ErrOrderNotEditable = errors.New("only orders in status new can be edited")
)

// Buyer holds the contact data captured at checkout. Sector is optional.
type Buyer struct {
	Name    string
	Address string
	Sector  string
	Email   string
}

// Validate requires name, address and email.
func (b Buyer) Validate() error {
	var problems []error
	if strings.TrimSpace(b.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("buyer_name"))
	}
	if strings.TrimSpace(b.Address) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address"))
	}
	if strings.TrimSpace(b.Email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	return errors.Join(problems...)
}

// Order is an active customer purchase awaiting fulfillment.
//
// Invariants:
//   - at least one line item
//   - total equals the sum of item subtotals at creation time
//   - status is one of New, Preparing, EnRoute
type Order struct {
	id        kernel.UUID
	items     []LineItem
	total     kernel.Money
	buyer     Buyer
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in New status. The total is the sum of item subtotals.
//
// Example:
//
//	item, _ := order.NewLineItem(fish.ID(), fish.Name(), 2, fish.Price())
//	o, err := order.NewOrder(kernel.NewUUID(), order.Buyer{
//	    Name: "Pingu", Address: "Igloo 4", Email: "pingu@example.com",
//	}, []order.LineItem{item}, time.Now())
func NewOrder(id kernel.UUID, buyer Buyer, items []LineItem, now time.Time) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	o.total = total

	return o, nil
}

// RestoreOrder rebuilds a persisted order without recomputing its total.
func RestoreOrder(
	id kernel.UUID,
	buyer Buyer,
	items []LineItem,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	var totalErr error
	if err := total.Validate(); err != nil {
		totalErr = errs.NewValueIsInvalidErrorWithCause("total", err)
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyer),
		o.setItems(items),
		status.Validate(),
		totalErr,
	); err != nil {
		return nil, err
	}

	o.total = total
	o.status = status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the line items in their stored order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Buyer() Buyer {
	return o.buyer
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// HasLegacyItems reports whether any item lacks a product reference.
func (o *Order) HasLegacyItems() bool {
	for _, it := range o.items {
		if !it.HasProductRef() {
			return true
		}
	}
	return false
}

// IsLegacy reports whether no item carries a product reference. Such orders
// predate product references and are removed by the legacy purge.
func (o *Order) IsLegacy() bool {
	for _, it := range o.items {
		if it.HasProductRef() {
			return false
		}
	}
	return true
}

// ChangeStatus moves the order to next. Any valid label is accepted,
// including moving backwards.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	o.status = next
	return nil
}

// ChangeContact replaces the buyer name and address. Email and sector stay as
// captured at checkout. Only New orders accept the change.
func (o *Order) ChangeContact(name, address string) error {
	if o.status != New {
		return ErrOrderNotEditable
	}
	buyer := o.buyer
	buyer.Name = name
	buyer.Address = address
	return o.setBuyer(buyer)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyer(buyer Buyer) error {
	buyer = Buyer{
		Name:    strings.TrimSpace(buyer.Name),
		Address: strings.TrimSpace(buyer.Address),
		Sector:  strings.TrimSpace(buyer.Sector),
		Email:   strings.TrimSpace(buyer.Email),
	}
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
