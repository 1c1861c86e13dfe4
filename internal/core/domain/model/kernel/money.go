package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of decimal places every persisted amount keeps.
const CentPlaces = 2

var (
	ErrMoneyIsNotConstructed   = errors.New("Money must be created via NewMoney or MoneyFromString")
	ErrPercentIsNotConstructed = errors.New("Percent must be created via NewPercent")

	hundred = decimal.NewFromInt(100)
)

// Money is a non-negative decimal amount. Arithmetic keeps full precision;
// Round applies half-up rounding to cents and is only called where a value
// becomes authoritative (an order total, a report figure).
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded")
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Times multiplies by a non-negative integer quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// Discounted applies p, giving m × (1 − p/100).
func (m Money) Discounted(p Percent) Money {
	return Money{amount: m.amount.Mul(p.Remainder()), guard: guard.NewConstructorGuard()}
}

// Round rounds half-up to cents. Amounts are never negative, so the
// half-away-from-zero rule of decimal.Round is half-up here.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(CentPlaces), guard: guard.NewConstructorGuard()}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(CentPlaces)
}

// Percent is a discount between 0 and 100 inclusive.
type Percent struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percent{}, errs.NewValueIsOutOfRangeError("discount", value.String(), 0, 100)
	}
	return Percent{value: value, guard: guard.NewConstructorGuard()}, nil
}

func MustPercent(value int64) Percent {
	p, err := NewPercent(decimal.NewFromInt(value))
	if err != nil {
		panic(fmt.Sprintf("invalid percent literal: %v", err))
	}
	return p
}

func ZeroPercent() Percent {
	return Percent{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (p Percent) Validate() error {
	return p.guard.Validate(ErrPercentIsNotConstructed)
}

func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

// Remainder is the fraction left after the discount, 1 − p/100.
func (p Percent) Remainder() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(p.value.Div(hundred))
}
