// Package present formats accounts for the terminal.
package present

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// HiddenBalance replaces amounts when balances are hidden.
const HiddenBalance = "••••••"

// Formatter renders amounts in one currency.
type Formatter struct {
	Currency string
	Hidden   bool
}

func NewFormatter(currency string, hidden bool) Formatter {
	return Formatter{Currency: currency, Hidden: hidden}
}

// Amount formats value using the currency symbol, separators and fraction
// digits. Unknown currency codes are formatted with two fraction digits and
// the code as symbol.
func (f Formatter) Amount(value decimal.Decimal) string {
	if f.Hidden {
		return HiddenBalance
	}
	// money.New registers unknown codes, so Currency() is never nil.
	cur := money.New(0, f.Currency).Currency()
	minor := value.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatWide(cur.Formatter(), minor)
}

// go-money formats int64 minor units; beyond that the digits would wrap.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// formatWide lays out minor units the way money.Formatter.Format does,
// working on the decimal digits instead of an int64.
func formatWide(f *money.Formatter, minor decimal.Decimal) string {
	digits := minor.Abs().BigInt().String()
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}

	intPart, fracPart := digits[:len(digits)-f.Fraction], digits[len(digits)-f.Fraction:]
	if f.Thousand != "" {
		for i := len(intPart) - 3; i > 0; i -= 3 {
			intPart = intPart[:i] + f.Thousand + intPart[i:]
		}
	}

	out := intPart
	if f.Fraction > 0 {
		out += f.Decimal + fracPart
	}
	out = strings.Replace(f.Template, "1", out, 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		out = "-" + out
	}
	return out
}
