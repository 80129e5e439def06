package kernel

import (
	"fmt"
	"math"

	"procurement/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// Amounts are stored as integer cents so that arithmetic on prices,
// shipping costs, and rollup totals is exact; a float representation is
// only produced at the serialization boundary.
//
// The zero value is a valid amount of zero. Money is immutable and safe
// for concurrent use.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromFloat(100.00)
//	if err != nil {
//	    // handle negative amount
//	}
//	shipping, _ := kernel.NewMoney(1000) // $10.00
//	total := price.Add(shipping)
//	fmt.Println(total.Float64()) // 110
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// The amount must not be negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money value from a decimal amount such as
// 100.50, rounding to the nearest cent. The amount must not be negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%v is not a valid non-negative amount", amount),
		)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal number of currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places, e.g. "110.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
