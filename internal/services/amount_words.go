package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountInWords spells an amount for the printed contract.
// Example: 1234.5 USD -> "ONE THOUSAND TWO HUNDRED THIRTY-FOUR USD AND 50/100"
func AmountInWords(amount decimal.Decimal, currency string) string {
	amount = amount.Round(2)
	negative := amount.IsNegative()
	amount = amount.Abs()

	whole := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	words := integerToWords(whole)
	if negative {
		words = "MINUS " + words
	}
	if currency != "" {
		words += " " + currency
	}
	if cents > 0 {
		words += fmt.Sprintf(" AND %02d/100", cents)
	}
	return words
}

var scales = []string{"", "THOUSAND", "MILLION", "BILLION", "TRILLION", "QUADRILLION", "QUINTILLION"}

func integerToWords(n int64) string {
	if n == 0 {
		return "ZERO"
	}

	var groups []string
	for scale := 0; n > 0; scale++ {
		chunk := n % 1000
		n /= 1000
		if chunk == 0 {
			continue
		}
		part := hundredsToWords(chunk)
		if scales[scale] != "" {
			part += " " + scales[scale]
		}
		groups = append([]string{part}, groups...)
	}
	return strings.Join(groups, " ")
}

// hundredsToWords handles 1..999
func hundredsToWords(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, ones[h]+" HUNDRED")
	}
	switch rest := n % 100; {
	case rest == 0:
	case rest < 20:
		parts = append(parts, ones[rest])
	case rest%10 == 0:
		parts = append(parts, tens[rest/10])
	default:
		parts = append(parts, tens[rest/10]+"-"+ones[rest%10])
	}
	return strings.Join(parts, " ")
}

var ones = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}
