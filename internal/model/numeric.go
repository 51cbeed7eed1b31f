package model

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotNumeric is returned when a value cannot be read as a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Numeric is a loosely typed number as clients send it: 11, 3.85, "11" or "3.85".
// The empty value means absent.
type Numeric string

// UnmarshalJSON accepts JSON numbers, strings and null.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*n = ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(str))
	default:
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return ErrNotNumeric
		}
		*n = Numeric(num)
	}
	return nil
}

// NumericFrom converts a value decoded into interface{} by encoding/json.
func NumericFrom(v any) (Numeric, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return Numeric(strings.TrimSpace(val)), nil
	case float64:
		return Numeric(strconv.FormatFloat(val, 'f', -1, 64)), nil
	case json.Number:
		return Numeric(val), nil
	case int:
		return Numeric(strconv.Itoa(val)), nil
	default:
		return "", ErrNotNumeric
	}
}

// IsEmpty reports whether no value was given.
func (n Numeric) IsEmpty() bool {
	return n == ""
}

// Int returns the value as a whole number, or nil when empty.
func (n Numeric) Int() (*int, error) {
	if n.IsEmpty() {
		return nil, nil
	}
	if v, err := strconv.Atoi(string(n)); err == nil {
		return &v, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return nil, ErrNotNumeric
	}
	v := int(f)
	return &v, nil
}

// Decimal returns the value as a nullable decimal, invalid when empty.
func (n Numeric) Decimal() (decimal.NullDecimal, error) {
	if n.IsEmpty() {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.NullDecimal{}, ErrNotNumeric
	}
	return decimal.NewNullDecimal(d), nil
}
