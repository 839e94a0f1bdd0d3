package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders a rupee amount with Indian digit grouping, e.g.
// 1234567.5 -> "₹12,34,567.50".
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	rupees := int64(amount)
	paise := int64(math.Round((amount - float64(rupees)) * 100))
	if paise == 100 {
		rupees++
		paise = 0
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, groupIndian(rupees), paise)
}

// RupeesToPaise converts a rupee amount into gateway minor units.
func RupeesToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PaiseToRupees converts gateway minor units back to rupees.
func PaiseToRupees(paise int64) float64 {
	return float64(paise) / 100
}

// groupIndian applies lakh/crore grouping: last three digits, then pairs.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
