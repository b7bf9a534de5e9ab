package fintrace

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// Display currencies use a value-then-symbol template with two
	// fractional digits and no grouping, overriding go-money's stock
	// definitions (RWF normally carries zero minor digits).
	money.AddCurrency("USD", "$", "1 $", ".", "", 2)
	money.AddCurrency("RWF", "Fr", "1 $", ".", "", 2)
}

// Amount represents a monetary value in base units (the currency the user
// typed records in). Display conversion happens only at rendering time.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// ParseAmount parses a decimal amount from its textual form.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount    { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount    { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Abs() Amount            { return Amount{value: a.value.Abs()} }
func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }
func (a Amount) Cmp(b Amount) int       { return a.value.Cmp(b.value) }

// String returns the amount with two fractional digits, no symbol.
func (a Amount) String() string { return a.value.StringFixed(2) }

// Deprecated: AsFloat loses exactness, it only exists for chart scaling.
func (a Amount) AsFloat() float64 { return a.value.InexactFloat64() }

func (a Amount) MarshalJSON() ([]byte, error)  { return a.value.MarshalJSON() }
func (a *Amount) UnmarshalJSON(b []byte) error { return a.value.UnmarshalJSON(b) }

// DefaultCurrency is the display currency used when none was ever chosen.
const DefaultCurrency = "USD"

// conversionRates is the fixed display-conversion table. Rates are never
// fetched (offline by design); unknown codes fall back to 1.0 and "$".
var conversionRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromFloat(1.0),
	"RWF": decimal.NewFromFloat(1300.0),
}

// KnownCurrency reports whether code is in the supported display set.
func KnownCurrency(code string) bool {
	_, ok := conversionRates[code]
	return ok
}

// Currencies returns the supported display currency codes.
func Currencies() []string { return []string{"USD", "RWF"} }

// CurrencyDisplay converts an amount to the given display currency and
// formats it with two fractional digits and the currency symbol as suffix,
// e.g. "3.50 $" or "4550.00 Fr".
func CurrencyDisplay(a Amount, code string) string {
	rate, ok := conversionRates[code]
	if !ok {
		code, rate = DefaultCurrency, decimal.NewFromFloat(1.0)
	}
	converted := a.value.Mul(rate)
	cur := money.GetCurrency(code)
	// Shift to minor units for the go-money formatter.
	minor := converted.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
