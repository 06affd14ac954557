package bankaccount

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Storable range of a numeric(20,2) balance column.
const (
	balanceScale     = 2
	balanceMaxDigits = 18
)

var balanceLimit = decimal.New(1, balanceMaxDigits)

// ParseBalance parses user or wire text into an amount rounded to cents. The
// whole string must be a decimal number with |v| < 1e18; anything else
// yields zero.
func ParseBalance(text string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || d.IsZero() {
		return decimal.Zero
	}
	// Magnitude checks stay on digits and exponent: rescaling 1e100000000
	// or 1e-100000000 materialises every digit.
	magnitude := d.NumDigits() + int(d.Exponent())
	if magnitude > balanceMaxDigits {
		return decimal.Zero
	}
	if magnitude < -balanceScale {
		// |v| < 0.001 rounds to zero.
		return decimal.Zero
	}
	d = d.Round(balanceScale)
	if d.Abs().GreaterThanOrEqual(balanceLimit) {
		return decimal.Zero
	}
	return d
}

// Balance is a signed amount that tolerates both JSON numbers and JSON
// strings on input and always encodes as a JSON number.
type Balance struct {
	decimal.Decimal
}

func NewBalance(d decimal.Decimal) Balance {
	return Balance{Decimal: d}
}

// RequireBalance parses s and panics on malformed input. Intended for
// literals in tests and fixtures.
func RequireBalance(s string) Balance {
	return Balance{Decimal: decimal.RequireFromString(s)}
}

func (b Balance) MarshalJSON() ([]byte, error) {
	return []byte(b.Decimal.String()), nil
}

// UnmarshalJSON never fails: null, malformed numbers and non-numeric strings
// all decode to zero.
func (b *Balance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			b.Decimal = decimal.Zero
			return nil
		}
		b.Decimal = ParseBalance(s)
		return nil
	}
	b.Decimal = ParseBalance(string(data))
	return nil
}

func (b Balance) Equal(other Balance) bool {
	return b.Decimal.Equal(other.Decimal)
}
