package utils

import "testing"

func TestFormatINRGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{25000.5, "₹25,000.50"},
		{100000, "₹1,00,000.00"},
		{1234567.5, "₹12,34,567.50"},
		{10000000, "₹1,00,00,000.00"},
		{-1500, "-₹1,500.00"},
		{999.999, "₹1,000.00"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPaiseRoundTrip(t *testing.T) {
	if got := RupeesToPaise(25000.50); got != 2500050 {
		t.Fatalf("RupeesToPaise = %d", got)
	}
	if got := PaiseToRupees(2500050); got != 25000.50 {
		t.Fatalf("PaiseToRupees = %v", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(12.5); got != "12.50" {
		t.Fatalf("FormatMoney = %q", got)
	}
}
