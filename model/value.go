package model

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Value is the payload of a primitive node.
//
// The set of implementations is closed: BooleanValue, IntegerValue, StringValue and DecimalValue.
type Value interface {
	isValue()
	String() string
}

// BooleanValue holds the value of a boolean.
type BooleanValue bool

// IntegerValue holds the value of an integer, positiveInt or unsignedInt.
type IntegerValue int64

// StringValue holds the value of every string-like primitive, including dates and times.
type StringValue string

// DecimalValue holds an arbitrary precision decimal.
// Precision is significant: 1.0 and 1.00 are different values.
type DecimalValue struct {
	d *apd.Decimal
}

func (BooleanValue) isValue() {}
func (IntegerValue) isValue() {}
func (StringValue) isValue()  {}
func (DecimalValue) isValue() {}

func (v BooleanValue) String() string { return strconv.FormatBool(bool(v)) }
func (v IntegerValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v StringValue) String() string  { return string(v) }

func (v DecimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.Text('f')
}

// ParseDecimal parses s into a DecimalValue.
func ParseDecimal(s string) (DecimalValue, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return DecimalValue{}, err
	}
	return DecimalValue{d: d}, nil
}

// DecimalOf wraps a copy of d.
func DecimalOf(d *apd.Decimal) DecimalValue {
	return DecimalValue{d: new(apd.Decimal).Set(d)}
}

// Decimal returns a copy of the wrapped decimal.
func (v DecimalValue) Decimal() *apd.Decimal {
	if v.d == nil {
		return new(apd.Decimal)
	}
	return new(apd.Decimal).Set(v.d)
}

func valueEqual(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case DecimalValue:
		b, ok := b.(DecimalValue)
		if !ok {
			return false
		}
		x, y := a.Decimal(), b.Decimal()
		return x.Cmp(y) == 0 && x.Exponent == y.Exponent
	default:
		return a == b
	}
}

// valueKind names the dynamic kind of v for diagnostics.
func valueKind(v Value) string {
	switch v.(type) {
	case BooleanValue:
		return "boolean"
	case IntegerValue:
		return "integer"
	case StringValue:
		return "string"
	case DecimalValue:
		return "decimal"
	default:
		return "none"
	}
}
