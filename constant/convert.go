package constant

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/astopt/ast"
)

// decimal is the StrDecimalLiteral grammar, without sign and 'Infinity'.
var decimal = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber converts a primitive value to a number.
func ToNumber(v Value) float64 {
	switch v.t {
	case NumberType:
		return v.num
	case BooleanType:
		if v.b {
			return 1
		}
		return 0
	case NullType:
		return 0
	case StringType:
		return stringToNumber(v.str)
	}
	return math.NaN()
}

func isWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func stringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isWhiteSpace)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radixToNumber(s[2:], 16)
		case 'o', 'O':
			return radixToNumber(s[2:], 8)
		case 'b', 'B':
			return radixToNumber(s[2:], 2)
		}
	}
	sign := 1.0
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "Infinity" {
		return math.Inf(int(sign))
	}
	if !decimal.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return sign * f
}

func radixToNumber(digits string, radix int) float64 {
	f := 0.0
	for _, c := range digits {
		d, err := strconv.ParseInt(string(c), radix, 8)
		if err != nil {
			return math.NaN()
		}
		f = f*float64(radix) + float64(d)
	}
	return f
}

// ToString converts a primitive value to a string.
func ToString(v Value) string {
	switch v.t {
	case StringType:
		return v.str
	case NumberType:
		return ast.FormatNumber(v.num)
	case BooleanType:
		return strconv.FormatBool(v.b)
	}
	return v.t.String()
}

// ToBoolean converts a primitive value to a boolean.
func ToBoolean(v Value) bool {
	switch v.t {
	case BooleanType:
		return v.b
	case NumberType:
		return v.num != 0 && !math.IsNaN(v.num)
	case StringType:
		return v.str != ""
	}
	return false
}

// ToUint32 converts a primitive value to a number and then to an unsigned
// 32-bit integer, modulo 2^32.
func ToUint32(v Value) uint32 {
	f := ToNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(math.Trunc(f), 1<<32)
	if f < 0 {
		f += 1 << 32
	}
	return uint32(f)
}

// ToInt32 converts a primitive value to a number and then to a signed
// 32-bit integer, modulo 2^32.
func ToInt32(v Value) int32 {
	return int32(ToUint32(v))
}

// TypeOf returns the result of the 'typeof' operator for v.
func TypeOf(v Value) string {
	if v.t == NullType {
		return "object"
	}
	return v.t.String()
}
