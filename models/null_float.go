package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NullFloat is a float64 that may be missing. Missing values encode as JSON null.
type NullFloat struct {
	Value float64
	Valid bool
}

// Float returns a valid NullFloat holding v.
func Float(v float64) NullFloat {
	return NullFloat{Value: v, Valid: true}
}

// Null returns a missing value.
func Null() NullFloat {
	return NullFloat{}
}

// ParseNullFloat coerces a loosely typed cell into a number. Blank, non-numeric,
// NaN and infinite cells are missing.
func ParseNullFloat(s string) NullFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return Null()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return Float(v)
}

// OrZero returns the value, or 0 when missing.
func (n NullFloat) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// Add sums two values treating missing as zero. The result is always valid.
func (n NullFloat) Add(o NullFloat) NullFloat {
	return Float(n.OrZero() + o.OrZero())
}

// Div divides n by d. A missing operand or a zero denominator yields a missing value.
func (n NullFloat) Div(d NullFloat) NullFloat {
	if !n.Valid || !d.Valid || d.Value == 0 {
		return Null()
	}
	return Float(n.Value / d.Value)
}

// Scale multiplies a valid value by k.
func (n NullFloat) Scale(k float64) NullFloat {
	if !n.Valid {
		return n
	}
	return Float(n.Value * k)
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Null()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}
