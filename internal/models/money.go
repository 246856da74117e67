package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxScale is the largest number of fractional digits an amount may carry.
const MaxScale = 4

// Money is an exact decimal quantity. The zero value is 0.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// ParseMoney parses a decimal literal such as "1.5" or "10.0001".
// The scale is kept as written, so "1.50000" has scale 5.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// MustParseMoney is ParseMoney for literals known to be valid. It panics otherwise.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoney builds value * 10^exp, e.g. NewMoney(15, -1) is 1.5.
func NewMoney(value int64, exp int32) Money {
	return Money{d: decimal.New(value, exp)}
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }

func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

func (m Money) LessThanOrEqual(o Money) bool { return m.d.LessThanOrEqual(o.d) }

func (m Money) IsNegative() bool { return m.d.IsNegative() }

// Scale is the number of fractional digits the value was written with.
func (m Money) Scale() int32 {
	if exp := m.d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// String renders the value with exactly MaxScale fractional digits.
func (m Money) String() string {
	return m.d.StringFixed(MaxScale)
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal { return m.d }

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalJSON renders the amount as a JSON string so no precision is lost.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// MarshalYAML renders the amount as a string scalar.
func (m Money) MarshalYAML() (any, error) {
	return m.String(), nil
}

// Value implements driver.Valuer for numeric columns.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}
