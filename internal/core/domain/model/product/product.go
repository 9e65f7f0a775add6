package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned for a Product that bypassed NewProduct/RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a decrement that would drive stock below zero.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: have %d, need %d", e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is a catalog entry.
//
// Invariants:
//   - name is not blank
//   - price is a valid non-negative Money
//   - stock is never negative
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	imagePath   string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalog entry stamped with now as both created and updated time.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("4.50")
//	p, err := product.NewProduct(kernel.NewUUID(), "Fresh fish", "", price, 20, true, time.Now())
func NewProduct(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	stock int,
	isActive bool,
	now time.Time,
) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		isActive:      isActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a Product from persisted state, applying the same invariants.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	stock int,
	imagePath string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		imagePath:     imagePath,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) Stock() int { return p.stock }
func (p *Product) ImagePath() string { return p.imagePath }
func (p *Product) IsActive() bool { return p.isActive }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
func (p *Product) HasStockFor(qty int) bool { return qty <= p.stock }

// DecreaseStock removes qty units. It fails with *InsufficientStockError and leaves
// the product untouched when fewer than qty units are available.
func (p *Product) DecreaseStock(qty int, now time.Time) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("qty", qty, 1, "unbounded")
	}
	if !p.HasStockFor(qty) {
		return &InsufficientStockError{ProductName: p.name, Available: p.stock, Requested: qty}
	}

	p.stock -= qty
	p.updatedAt = now
	return nil
}

// Update replaces the editable catalog fields. The image is kept.
func (p *Product) Update(
	name, description string,
	price kernel.Money,
	stock int,
	isActive bool,
	now time.Time,
) error {
	candidate := *p
	if err := errors.Join(
		candidate.setName(name),
		candidate.setPrice(price),
		candidate.setStock(stock),
	); err != nil {
		return err
	}

	candidate.description = strings.TrimSpace(description)
	candidate.isActive = isActive
	candidate.updatedAt = now
	*p = candidate
	return nil
}

// SetImage records the public path of the product picture.
func (p *Product) SetImage(path string, now time.Time) error {
	if strings.TrimSpace(path) == "" {
		return errs.NewValueIsRequiredError("image_path")
	}
	p.imagePath = path
	p.updatedAt = now
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
