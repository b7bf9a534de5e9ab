package fintrace

import "testing"

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("3.50")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(3.5)) {
		t.Errorf("ParseAmount(3.50) = %s", a)
	}
	if _, err := ParseAmount("three"); err == nil {
		t.Error("ParseAmount should fail on non-numeric input")
	}
}

func TestAmountString(t *testing.T) {
	if got := A(3.5).String(); got != "3.50" {
		t.Errorf("String = %q, want 3.50", got)
	}
	if got := A(200).String(); got != "200.00" {
		t.Errorf("String = %q, want 200.00", got)
	}
}

func TestCurrencyDisplay(t *testing.T) {
	testCases := []struct {
		name   string
		amount Amount
		code   string
		want   string
	}{
		{"usd is the identity rate", A(3.5), "USD", "3.50 $"},
		{"rwf converts at 1300", A(3.5), "RWF", "4550.00 Fr"},
		{"no grouping separators", A(200), "RWF", "260000.00 Fr"},
		{"unknown code falls back to dollar at 1.0", A(3.5), "XYZ", "3.50 $"},
		{"zero", A(0), "USD", "0.00 $"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrencyDisplay(tc.amount, tc.code); got != tc.want {
				t.Errorf("CurrencyDisplay(%s, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
			}
		})
	}
}

func TestKnownCurrency(t *testing.T) {
	for _, code := range Currencies() {
		if !KnownCurrency(code) {
			t.Errorf("KnownCurrency(%q) = false", code)
		}
	}
	if KnownCurrency("EUR") {
		t.Error("EUR is not in the supported display set")
	}
}
