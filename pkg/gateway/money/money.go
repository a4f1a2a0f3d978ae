// Package money holds the amount and currency conventions shared by all gateway contracts.
//
// The gateway uses two incompatible numeric conventions: decimal amounts in major currency
// units (Amount) and integer amounts in minor currency units (MinorAmount). They are kept as
// separate types so one can never silently be passed where the other is expected.
package money

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Amount is a decimal amount in major currency units, e.g. 100.50 UAH.
//
// On the wire it is a bare JSON number. Numeric strings are accepted when reading.
type Amount struct {
	decimal.Decimal
}

func NewAmount(value decimal.Decimal) Amount {
	return Amount{Decimal: value}
}

// New returns value * 10^exp, so New(1999, -2) is 19.99.
func New(value int64, exp int32) Amount {
	return Amount{Decimal: decimal.New(value, exp)}
}

func AmountFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Amount{Decimal: d}, nil
}

func AmountFromFloat(value float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(value)}
}

// Ptr is a convenience for filling optional contract fields.
func (a Amount) Ptr() *Amount {
	return &a
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return a.Decimal.UnmarshalJSON(data)
}

// MinorAmount is an integer amount in minor currency units (hundredths), e.g. 10050 for 100.50.
type MinorAmount int64

// Major converts to major units. The conversion is exact.
func (m MinorAmount) Major() Amount {
	return Amount{Decimal: decimal.New(int64(m), -2)}
}

func (m MinorAmount) Ptr() *MinorAmount {
	return &m
}

// Currency is an ISO 4217 alphabetic currency code.
type Currency string

const (
	UAH Currency = "UAH"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

var currencyPattern = regexp.MustCompile("^[A-Z]{3}$")

func (c Currency) IsValid() bool {
	return currencyPattern.MatchString(string(c))
}

func (c Currency) String() string {
	return string(c)
}
