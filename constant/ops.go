package constant

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"unicode/utf16"
)

type binaryOp func(l, r Value) Value
type unaryOp func(x Value) Value

var binaryOperators = map[string]binaryOp{
	"+": add,
	"-": func(l, r Value) Value { return Num(ToNumber(l) - ToNumber(r)) },
	"*": func(l, r Value) Value { return Num(ToNumber(l) * ToNumber(r)) },
	"/": func(l, r Value) Value { return Num(ToNumber(l) / ToNumber(r)) },
	"%": func(l, r Value) Value { return Num(math.Mod(ToNumber(l), ToNumber(r))) },
	"^": func(l, r Value) Value { return Num(float64(ToInt32(l) ^ ToInt32(r))) },
	"|": func(l, r Value) Value { return Num(float64(ToInt32(l) | ToInt32(r))) },
	"&": func(l, r Value) Value { return Num(float64(ToInt32(l) & ToInt32(r))) },
	"<<": func(l, r Value) Value {
		return Num(float64(ToInt32(l) << (ToUint32(r) & 31)))
	},
	">>": func(l, r Value) Value {
		return Num(float64(ToInt32(l) >> (ToUint32(r) & 31)))
	},
	">>>": func(l, r Value) Value {
		return Num(float64(ToUint32(l) >> (ToUint32(r) & 31)))
	},
	"==":  func(l, r Value) Value { return Bool(looseEquals(l, r)) },
	"!=":  func(l, r Value) Value { return Bool(!looseEquals(l, r)) },
	"===": func(l, r Value) Value { return Bool(strictEquals(l, r)) },
	"!==": func(l, r Value) Value { return Bool(!strictEquals(l, r)) },
	"<": func(l, r Value) Value {
		less, ok := lessThan(l, r)
		return Bool(ok && less)
	},
	">": func(l, r Value) Value {
		less, ok := lessThan(r, l)
		return Bool(ok && less)
	},
	"<=": func(l, r Value) Value {
		less, ok := lessThan(r, l)
		return Bool(ok && !less)
	},
	">=": func(l, r Value) Value {
		less, ok := lessThan(l, r)
		return Bool(ok && !less)
	},
	"||": func(l, r Value) Value {
		if ToBoolean(l) {
			return l
		}
		return r
	},
	"&&": func(l, r Value) Value {
		if ToBoolean(l) {
			return r
		}
		return l
	},
}

var unaryOperators = map[string]unaryOp{
	"+":      func(x Value) Value { return Num(ToNumber(x)) },
	"-":      func(x Value) Value { return Num(-ToNumber(x)) },
	"~":      func(x Value) Value { return Num(float64(^ToInt32(x))) },
	"!":      func(x Value) Value { return Bool(!ToBoolean(x)) },
	"typeof": func(x Value) Value { return Str(TypeOf(x)) },
	"void":   func(x Value) Value { return Undefined },
}

// IsBinaryOperator is true if Binary supports operator op.
func IsBinaryOperator(op string) bool {
	_, ok := binaryOperators[op]
	return ok
}

// IsUnaryOperator is true if Unary supports operator op.
func IsUnaryOperator(op string) bool {
	_, ok := unaryOperators[op]
	return ok
}

// Binary applies a binary operator to two primitive values. It returns false
// if the operator is not supported.
func Binary(op string, l, r Value) (Value, bool) {
	f, ok := binaryOperators[op]
	if !ok || !l.IsValid() || !r.IsValid() {
		return Value{}, false
	}
	return f(l, r), true
}

// Unary applies a unary operator to a primitive value. It returns false
// if the operator is not supported.
func Unary(op string, x Value) (Value, bool) {
	f, ok := unaryOperators[op]
	if !ok || !x.IsValid() {
		return Value{}, false
	}
	return f(x), true
}

// ---------------------------------------------------------------------------

func add(l, r Value) Value {
	if l.t == StringType || r.t == StringType {
		return Str(ToString(l) + ToString(r))
	}
	return Num(ToNumber(l) + ToNumber(r))
}

func strictEquals(l, r Value) bool {
	if l.t != r.t {
		return false
	}
	if l.t == NumberType {
		return l.num == r.num // NaN != NaN, 0 == -0
	}
	return Same(l, r)
}

func looseEquals(l, r Value) bool {
	switch {
	case l.t == r.t:
		return strictEquals(l, r)
	case isNullish(l) && isNullish(r):
		return true
	case isNullish(l) || isNullish(r):
		return false
	case l.t == BooleanType:
		return looseEquals(Num(ToNumber(l)), r)
	case r.t == BooleanType:
		return looseEquals(l, Num(ToNumber(r)))
	}
	// number vs. string
	return ToNumber(l) == ToNumber(r)
}

func isNullish(v Value) bool {
	return v.t == UndefinedType || v.t == NullType
}

// lessThan is the abstract relational comparison l < r. ok is false if the
// result is undefined, i.e. one of the operands converts to NaN.
func lessThan(l, r Value) (less bool, ok bool) {
	if l.t == StringType && r.t == StringType {
		return compareUTF16(l.str, r.str) < 0, true
	}
	x, y := ToNumber(l), ToNumber(r)
	if math.IsNaN(x) || math.IsNaN(y) {
		return false, false
	}
	return x < y, true
}

func compareUTF16(a, b string) int {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	return len(ua) - len(ub)
}
