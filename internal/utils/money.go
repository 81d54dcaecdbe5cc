package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinorToMajor converts a gateway amount in paise to rupees. The gateway
// always speaks in the smallest currency unit; the ledger stores major units.
func MinorToMajor(paise int64) float64 {
	return float64(paise) / 100
}

// MajorToMinor converts rupees to paise for gateway order creation.
func MajorToMinor(rupees int64) int64 {
	return rupees * 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupee renders a rupee amount with Indian thousand separators and two
// decimals, e.g. 250000.50 -> "₹2,50,000.50".
func FormatRupee(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(fixed, ".")
	return fmt.Sprintf("%s₹%s.%s", sign, groupIndian(whole), frac)
}

// groupIndian inserts separators in the 2,2,3 Indian numbering pattern.
func groupIndian(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
