package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount of virtual currency in cents.
// The backend speaks floating point dollars; everything inside the gateway
// works on whole cents so that balance arithmetic is exact.
type Money int64

const centsPerUnit = 100

var moneyPrinter = message.NewPrinter(language.English)

// MoneyFromFloat converts a dollar amount to cents, rounding half away from zero.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * centsPerUnit))
}

// Dollars converts a whole dollar amount to Money.
func Dollars(whole int64) Money {
	return Money(whole * centsPerUnit)
}

// Float returns the dollar value.
func (m Money) Float() float64 {
	return float64(m) / centsPerUnit
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// String renders a plain two-decimal value, e.g. "4.99".
func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}

// Format renders a display string with grouping, e.g. "$1,234.50".
func (m Money) Format() string {
	sign := ""
	v := m
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + moneyPrinter.Sprintf("$%.2f", v.Float())
}

// MarshalJSON emits the amount as a JSON number in dollars.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts numbers, numeric strings, and null.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimPrefix(strings.TrimSpace(s), "$")
		if raw == "" {
			*m = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: money value %q", ErrInvalidInput, raw)
	}
	*m = MoneyFromFloat(v)
	return nil
}
