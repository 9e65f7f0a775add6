package kernel

import (
	"errors"
	"fmt"

	"penguinadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every amount.
const MoneyScale = 2

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount in the shop currency.
// Arithmetic keeps MoneyScale digits and never produces a negative value.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(MoneyScale), isConstructed: true}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromInt builds a whole amount. Used mostly by tests and seed data.
func MoneyFromInt(units int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(units))
}

// ZeroMoney is a constructed zero amount, the neutral element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Times returns m multiplied by a non-negative quantity.
func (m Money) Times(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("qty", qty, 0, "unbounded")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty))), isConstructed: true}, nil
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly MoneyScale decimals.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
