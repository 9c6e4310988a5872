package constant

import (
	"math"
	"testing"

	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var negZero = math.Copysign(0, -1)

func TestCanonicalIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	tab := NewTable()
	if tab.Node(Num(0)) != tab.Node(Num(0)) {
		t.Errorf("expected canonical 0 to be identical on repeated calls")
	}
	if tab.Node(Num(0)) == tab.Node(Num(negZero)) {
		t.Errorf("expected -0 to be distinct from 0")
	}
	if tab.Node(Str("x")) != tab.Node(Str("x")) {
		t.Errorf("expected canonical string to be memoized")
	}
	if tab.Node(Num(42)) != tab.Node(Num(42)) {
		t.Errorf("expected canonical number to be memoized")
	}
	if tab.Node(Num(-42)) != tab.Node(Num(-42)) {
		t.Errorf("expected canonical negative number to be memoized")
	}
	one, zero := 1.0, 0.0
	nan, inf, ninf := tab.Node(Num(zero/zero)), tab.Node(Num(one/zero)), tab.Node(Num(one/negZero))
	if nan == inf || nan == ninf || inf == ninf {
		t.Errorf("expected NaN, Infinity and -Infinity to be mutually distinct")
	}
	if tab.Node(Num(math.NaN())) != nan {
		t.Errorf("expected all NaNs to share one fragment")
	}
}

func TestCanonicalShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	tab := NewTable()
	values := []Value{Num(0), Num(negZero), Num(math.NaN()), Num(math.Inf(1)), Num(math.Inf(-1)),
		Num(-5), Num(2.5), Undefined, Null, Bool(true), Str("a")}
	expected := []string{"0", "-0", "0 / 0", "1 / 0", "1 / -0", "-5", "2.5", "void 0", "null", "true", `"a"`}
	for i, v := range values {
		x := tab.Node(v)
		if src := ast.Source(x); src != expected[i] {
			t.Errorf("test #%d: expected %s, have %s", i, expected[i], src)
		}
		if !tab.IsConstant(x) {
			t.Errorf("test #%d: expected fragment to be tagged", i)
		}
		if back, ok := tab.FromNode(x).Get(); !ok || !Same(back, v) {
			t.Errorf("test #%d: expected %s from fragment, have %s", i, v, back)
		}
	}
	if _, ok := tab.Node(Num(-5)).(*ast.UnaryExpression); !ok {
		t.Errorf("expected negative number to be unary minus over positive literal")
	}
}

func TestFromNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	tab := NewTable()
	lit := &ast.LiteralNumericExpression{Value: 3}
	if v, ok := tab.FromNode(lit).Get(); !ok || v.Float() != 3 {
		t.Errorf("expected literal 3 to be recognized, have %v", tab.FromNode(lit))
	}
	if tab.IsConstant(lit) {
		t.Errorf("expected non-canonical literal not to be a canonical constant")
	}
	neg := &ast.UnaryExpression{Operator: "-", Operand: &ast.LiteralNumericExpression{Value: 0}}
	if v, ok := tab.FromNode(neg).Get(); !ok || !math.Signbit(v.Float()) {
		t.Errorf("expected -0 to be recognized")
	}
	if tab.FromNode(&ast.IdentifierExpression{Name: "x"}).IsPresent() {
		t.Errorf("expected identifier to be absent")
	}
	notneg := &ast.UnaryExpression{Operator: "!", Operand: &ast.LiteralNumericExpression{Value: 0}}
	if tab.FromNode(notneg).IsPresent() {
		t.Errorf("expected !0 to be absent (no general evaluation)")
	}
	if v, ok := tab.FromNode(&ast.LiteralNullExpression{}).Get(); !ok || v.Type() != NullType {
		t.Errorf("expected null literal to be recognized")
	}
}

func TestMake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	if v, err := Make(7); err != nil || v.Float() != 7 {
		t.Errorf("expected 7 to be accepted")
	}
	if v, err := Make(nil); err != nil || v.Type() != UndefinedType {
		t.Errorf("expected nil to map to undefined")
	}
	if _, err := Make([]int{1}); err == nil {
		t.Errorf("expected slice to be rejected")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Node to panic on invalid value")
		}
	}()
	NewTable().Node(Value{})
}

func TestToNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	inputs := []string{"", "  12  ", "0x1F", "0b101", "0o17", "-Infinity", "1e3", ".5", "5.",
		"-2.5", "abc", "1_000", "0x", "Infinity1", "\n"}
	expected := []float64{0, 12, 31, 5, 15, math.Inf(-1), 1000, 0.5, 5,
		-2.5, math.NaN(), math.NaN(), math.NaN(), math.NaN(), 0}
	for i, s := range inputs {
		f := ToNumber(Str(s))
		if !Same(Num(f), Num(expected[i])) {
			t.Errorf("test #%d: ToNumber(%q) expected %v, have %v", i, s, expected[i], f)
		}
	}
	if !math.IsNaN(ToNumber(Undefined)) || ToNumber(Null) != 0 || ToNumber(Bool(true)) != 1 {
		t.Errorf("unexpected ToNumber for undefined/null/true")
	}
	if ToInt32(Num(4294967295)) != -1 || ToUint32(Num(-1)) != 4294967295 {
		t.Errorf("unexpected 32-bit conversion")
	}
	if ToInt32(Num(math.Inf(1))) != 0 || ToInt32(Num(2147483648)) != -2147483648 {
		t.Errorf("unexpected 32-bit conversion for large values")
	}
}

func TestBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	type tcase struct {
		op   string
		l, r Value
		res  Value
	}
	cases := []tcase{
		{"+", Num(1), Num(2), Num(3)},
		{"+", Str("a"), Num(1), Str("a1")},
		{"+", Num(1), Null, Num(1)},
		{"+", Bool(true), Undefined, Num(math.NaN())},
		{"+", Str("x"), Undefined, Str("xundefined")},
		{"-", Str("5"), Num(2), Num(3)},
		{"/", Num(1), Num(negZero), Num(math.Inf(-1))},
		{"%", Num(-5), Num(3), Num(-2)},
		{"%", Num(5), Num(0), Num(math.NaN())},
		{"|", Num(1.7), Num(2), Num(3)},
		{"^", Num(5), Num(1), Num(4)},
		{"&", Num(-1), Num(255), Num(255)},
		{"<<", Num(1), Num(33), Num(2)},
		{">>", Num(-8), Num(1), Num(-4)},
		{">>>", Num(-1), Num(28), Num(15)},
		{"==", Null, Undefined, Bool(true)},
		{"==", Null, Num(0), Bool(false)},
		{"==", Str("1"), Num(1), Bool(true)},
		{"==", Bool(true), Str("1"), Bool(true)},
		{"===", Str("1"), Num(1), Bool(false)},
		{"===", Num(math.NaN()), Num(math.NaN()), Bool(false)},
		{"===", Num(0), Num(negZero), Bool(true)},
		{"!==", Num(1), Num(1), Bool(false)},
		{"!=", Undefined, Null, Bool(false)},
		{"<", Str("a"), Str("b"), Bool(true)},
		{"<", Str("10"), Str("9"), Bool(true)},
		{"<", Str("10"), Num(9), Bool(false)},
		{"<=", Num(math.NaN()), Num(1), Bool(false)},
		{">=", Null, Num(0), Bool(true)},
		{">", Undefined, Num(0), Bool(false)},
		{"||", Num(0), Str("x"), Str("x")},
		{"||", Str("y"), Str("x"), Str("y")},
		{"&&", Num(0), Str("x"), Num(0)},
		{"&&", Bool(true), Null, Null},
	}
	for i, c := range cases {
		res, ok := Binary(c.op, c.l, c.r)
		if !ok {
			t.Errorf("test #%d: operator %s not supported", i, c.op)
			continue
		}
		if !Same(res, c.res) {
			t.Errorf("test #%d: %s %s %s: expected %s, have %s", i, c.l, c.op, c.r, c.res, res)
		}
	}
	if _, ok := Binary("**", Num(2), Num(2)); ok {
		t.Errorf("expected ** to be unsupported")
	}
}

func TestUnary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	type tcase struct {
		op  string
		x   Value
		res Value
	}
	cases := []tcase{
		{"-", Num(0), Num(negZero)},
		{"-", Str("3"), Num(-3)},
		{"+", Str(""), Num(0)},
		{"+", Undefined, Num(math.NaN())},
		{"~", Num(5), Num(-6)},
		{"!", Str(""), Bool(true)},
		{"!", Num(math.NaN()), Bool(true)},
		{"typeof", Null, Str("object")},
		{"typeof", Num(1), Str("number")},
		{"typeof", Undefined, Str("undefined")},
		{"void", Str("x"), Undefined},
	}
	for i, c := range cases {
		res, ok := Unary(c.op, c.x)
		if !ok || !Same(res, c.res) {
			t.Errorf("test #%d: %s %s: expected %s, have %s", i, c.op, c.x, c.res, res)
		}
	}
	if _, ok := Unary("delete", Num(1)); ok {
		t.Errorf("expected delete to be unsupported")
	}
}

func TestToString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.constant")
	defer teardown()
	//
	values := []Value{Num(negZero), Num(1e21), Num(0.1), Undefined, Null, Bool(false), Num(math.NaN())}
	expected := []string{"0", "1e+21", "0.1", "undefined", "null", "false", "NaN"}
	for i, v := range values {
		if s := ToString(v); s != expected[i] {
			t.Errorf("test #%d: expected %q, have %q", i, expected[i], s)
		}
	}
}
