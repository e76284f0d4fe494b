package pricing

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a form value to a decimal using the numeric-or-zero
// rule shared by the pricing form fields and quantities: everything except digits,
// '.' and '-' is stripped (so "1,200 đ" reads as 1200), and an empty or
// unparseable remainder is zero. It never fails.
func ParseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Amount is a decimal that decodes leniently from JSON: numbers, numeric
// strings, null and garbage are all accepted, the latter two as zero.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler without ever returning an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		a.Decimal = decimal.Zero
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = ParseAmount(s)
	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			d = decimal.Zero
		}
		a.Decimal = d
	}
	return nil
}

// Number is a decimal that decodes strictly from JSON: null and an empty
// string are zero, anything else must be a plain number. A value that is not
// a number leaves Invalid set instead of failing the decode, so it can be
// reported next to the other field violations.
type Number struct {
	decimal.Decimal
	Invalid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	n.Decimal, n.Invalid = decimal.Zero, false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Invalid = true
			return nil
		}
		if raw = strings.TrimSpace(s); raw == "" {
			return nil
		}
	case data[0] != '-' && (data[0] < '0' || data[0] > '9'):
		n.Invalid = true
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		n.Invalid = true
		return nil
	}
	n.Decimal = d
	return nil
}

// ParseQuantity reads an integer quantity with the same leniency; fractional
// values are truncated.
func ParseQuantity(raw string) int {
	return int(ParseAmount(raw).IntPart())
}
