package constant

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/astopt/ast"
)

// ErrNotConstant is returned by Make for Go values which do not denote a
// primitive value.
var ErrNotConstant = errors.New("value is not constant")

// Type is the type of a primitive value.
type Type int8

// Primitive types. NoType marks the zero Value, which is invalid.
const (
	NoType Type = iota
	UndefinedType
	NullType
	BooleanType
	NumberType
	StringType
)

func (t Type) String() string {
	switch t {
	case UndefinedType:
		return "undefined"
	case NullType:
		return "null"
	case BooleanType:
		return "boolean"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	}
	return "<invalid>"
}

// Value is a primitive value. The zero Value is invalid.
type Value struct {
	t   Type
	num float64
	str string
	b   bool
}

// Undefined and Null are the unit values of their types.
var (
	Undefined = Value{t: UndefinedType}
	Null      = Value{t: NullType}
)

// Num creates a number value.
func Num(f float64) Value {
	return Value{t: NumberType, num: f}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{t: StringType, str: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{t: BooleanType, b: b}
}

// Make converts a Go value to a primitive value. Numbers may be given as any
// of Go's integer or float types; nil denotes undefined. All other Go values
// (including other Values) result in ErrNotConstant.
func Make(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Undefined, nil
	case Value:
		if v.IsValid() {
			return v, nil
		}
	case float64:
		return Num(v), nil
	case float32:
		return Num(float64(v)), nil
	case int:
		return Num(float64(v)), nil
	case int32:
		return Num(float64(v)), nil
	case int64:
		return Num(float64(v)), nil
	case uint32:
		return Num(float64(v)), nil
	case string:
		return Str(v), nil
	case bool:
		return Bool(v), nil
	}
	return Value{}, fmt.Errorf("%w: %v (%T)", ErrNotConstant, x, x)
}

// Type returns the primitive type of v.
func (v Value) Type() Type {
	return v.t
}

// IsValid is false for the zero Value.
func (v Value) IsValid() bool {
	return v.t != NoType
}

// Float returns the number of a number value, 0 otherwise.
// Use ToNumber for conversion.
func (v Value) Float() float64 {
	return v.num
}

// Text returns the string of a string value, "" otherwise.
// Use ToString for conversion.
func (v Value) Text() string {
	return v.str
}

// Truth returns the boolean of a boolean value, false otherwise.
// Use ToBoolean for conversion.
func (v Value) Truth() bool {
	return v.b
}

// String renders v the way it would appear in source code.
func (v Value) String() string {
	switch v.t {
	case NumberType:
		if v.num == 0 && math.Signbit(v.num) {
			return "-0"
		}
		return ast.FormatNumber(v.num)
	case StringType:
		return strconv.Quote(v.str)
	case BooleanType:
		return strconv.FormatBool(v.b)
	case UndefinedType, NullType:
		return v.t.String()
	}
	return "<invalid value>"
}

// Same implements the SameValue relation: NaN is the same as NaN, and
// -0 is not the same as 0. Otherwise it equals strict equality.
func Same(a, b Value) bool {
	if a.t != b.t {
		return false
	}
	switch a.t {
	case NumberType:
		if math.IsNaN(a.num) {
			return math.IsNaN(b.num)
		}
		return math.Float64bits(a.num) == math.Float64bits(b.num)
	case StringType:
		return a.str == b.str
	case BooleanType:
		return a.b == b.b
	}
	return true
}

// --- Option ----------------------------------------------------------------

// Option is either a present value or absent.
type Option struct {
	value   Value
	present bool
}

// Some wraps a present value.
func Some(v Value) Option {
	return Option{value: v, present: v.IsValid()}
}

// None is the absent Option.
func None() Option {
	return Option{}
}

// IsPresent is true if o holds a value.
func (o Option) IsPresent() bool {
	return o.present
}

// Value returns the value of o, or the invalid zero Value if o is absent.
func (o Option) Value() Value {
	return o.value
}

// Get returns the value of o and whether it is present.
func (o Option) Get() (Value, bool) {
	return o.value, o.present
}

func (o Option) String() string {
	if !o.present {
		return "None"
	}
	return "Some(" + o.value.String() + ")"
}
