package ast

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func num(f float64) *LiteralNumericExpression { return &LiteralNumericExpression{Value: f} }
func id(name string) *IdentifierExpression     { return &IdentifierExpression{Name: name} }

func call(name string, args ...Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: &CallExpression{
		Callee:    id(name),
		Arguments: ExpressionList(args...),
	}}
}

func TestKindNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	for k := ScriptKind; k < maxKind; k++ {
		kk, ok := KindByName(k.String())
		if !ok || kk != k {
			t.Errorf("kind %d does not round-trip by name %q", k, k.String())
		}
	}
	if _, ok := KindByName("WithStatement"); ok {
		t.Errorf("expected WithStatement to be unknown")
	}
}

func TestSchemaOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	names := FieldNames(IfStatementKind)
	if diff := cmp.Diff([]string{"test", "consequent", "alternate"}, names); diff != "" {
		t.Errorf("if-statement fields mismatch (-want +got):\n%s", diff)
	}
	if !IsListField(ScriptKind, "statements") {
		t.Errorf("expected Script.statements to be a list field")
	}
	if IsListField(BlockStatementKind, "block") {
		t.Errorf("expected BlockStatement.block to be a single-child field")
	}
	if len(Fields(IdentifierExpressionKind)) != 0 {
		t.Errorf("expected identifiers to have no fields")
	}
}

func TestChildAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	x := &BinaryExpression{Operator: "+", Left: num(1), Right: id("a")}
	if x.Child("left") != Element(x.Left) {
		t.Errorf("expected Child(left) to return left operand")
	}
	x.SetChild("right", num(2))
	if Source(x) != "1 + 2" {
		t.Errorf("expected 1 + 2, have %s", Source(x))
	}
	ret := &ReturnStatement{}
	if ret.Child("expression") != nil {
		t.Errorf("expected empty return to have nil expression child")
	}
	s := &Script{Statements: StatementList(ret)}
	s.SetChild("statements", nil)
	if s.Statements == nil || s.Statements.Len() != 0 {
		t.Errorf("expected nil list to be replaced by empty list")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected SetChild with statement into expression field to panic")
		}
	}()
	x.SetChild("left", ret)
}

func TestListRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	l := ExpressionList(id("a"), id("b"), id("c"), id("d"))
	l.RemoveAt(1)
	l.RemoveAt(2)
	if l.Len() != 2 || Source(l.At(0)) != "a" || Source(l.At(1)) != "c" {
		t.Errorf("unexpected list after removal: %v", l.Nodes())
	}
	if l.IndexOf(l.At(1)) != 1 {
		t.Errorf("expected IndexOf to find element by identity")
	}
	if l.IndexOf(id("c")) != -1 {
		t.Errorf("expected IndexOf to not compare by value")
	}
}

func TestSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	inputs := []Node{
		&BinaryExpression{Operator: "*",
			Left:  &BinaryExpression{Operator: "+", Left: num(1), Right: num(2)},
			Right: num(3)},
		&BinaryExpression{Operator: "-",
			Left:  id("a"),
			Right: &BinaryExpression{Operator: "-", Left: id("b"), Right: id("c")}},
		&BinaryExpression{Operator: ",",
			Left:  &BinaryExpression{Operator: ",", Left: id("a"), Right: id("b")},
			Right: id("c")},
		&UnaryExpression{Operator: "-", Operand: &UnaryExpression{Operator: "-", Operand: num(1)}},
		&UnaryExpression{Operator: "void", Operand: num(0)},
		&BinaryExpression{Operator: "/", Left: num(1), Right: &UnaryExpression{Operator: "-", Operand: num(0)}},
		&ConditionalExpression{Test: id("t"), Consequent: num(1), Alternate: num(2)},
		&ReturnStatement{Expression: &ConditionalExpression{Test: id("t"), Consequent: num(1), Alternate: num(2)}},
		&IfStatement{Test: id("t"),
			Consequent: &ReturnStatement{Expression: num(1)},
			Alternate:  &ReturnStatement{Expression: num(2)}},
		&Script{Statements: StatementList(call("a"), call("b", num(1), &LiteralStringExpression{Value: "x"}))},
		&BlockStatement{Block: &Block{Statements: NewList()}},
		&FunctionDeclaration{Name: "f",
			Params: NewList(&BindingIdentifier{Name: "x"}, &BindingIdentifier{Name: "y"}),
			Body:   &FunctionBody{Statements: StatementList(&ReturnStatement{Expression: id("x")})}},
		&WhileStatement{Test: &LiteralBooleanExpression{Value: true}, Body: &BreakStatement{Label: "l"}},
	}
	expected := []string{
		"(1 + 2) * 3",
		"a - (b - c)",
		"a, b, c",
		"- -1",
		"void 0",
		"1 / -0",
		"t ? 1 : 2",
		"return t ? 1 : 2;",
		"if (t) return 1; else return 2;",
		`a(); b(1, "x");`,
		"{}",
		"function f(x, y) { return x; }",
		"while (true) break l;",
	}
	for i, n := range inputs {
		if src := Source(n); src != expected[i] {
			t.Errorf("test #%d: expected %s, have %s", i, expected[i], src)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	inputs := []float64{0, math.Copysign(0, -1), 1, -1, 100, 0.5, 123.456, 1e21, 1e-7, 1.5e-7,
		0.000001, 123e18, math.NaN(), math.Inf(1), math.Inf(-1), 4294967295}
	expected := []string{"0", "0", "1", "-1", "100", "0.5", "123.456", "1e+21", "1e-7", "1.5e-7",
		"0.000001", "123000000000000000000", "NaN", "Infinity", "-Infinity", "4294967295"}
	for i, f := range inputs {
		if s := FormatNumber(f); s != expected[i] {
			t.Errorf("test #%d: expected %s, have %s", i, expected[i], s)
		}
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	good := &Script{Statements: StatementList(call("f", num(1)), &ReturnStatement{})}
	if err := Validate(good); err != nil {
		t.Errorf("expected tree to be valid, is: %v", err)
	}
	bad := &Script{Statements: StatementList(
		&ExpressionStatement{},
		&IfStatement{Consequent: &EmptyStatement{}},
	)}
	bad.Statements.Append(num(7))
	err := Validate(bad)
	if err == nil {
		t.Fatalf("expected tree to be invalid")
	}
	if !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected error to wrap ErrInvalidTree")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 3 {
		t.Errorf("expected 3 violations, have %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	a := &Script{Statements: StatementList(call("f", num(-1)))}
	b := &Script{Statements: StatementList(call("f", &UnaryExpression{Operator: "-", Operand: num(1)}))}
	if Source(a) != Source(b) {
		t.Fatalf("test setup: expected equal source, have %s and %s", Source(a), Source(b))
	}
	if Fingerprint(a) == Fingerprint(b) {
		t.Errorf("expected different fingerprints for different trees")
	}
	c := &Script{Statements: StatementList(call("f", num(-1)))}
	if Fingerprint(a) != Fingerprint(c) {
		t.Errorf("expected equal fingerprints for equal trees")
	}
}

func TestSourceDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	before := &ExpressionStatement{Expression: &BinaryExpression{Operator: "+", Left: num(1), Right: num(2)}}
	after := &ExpressionStatement{Expression: num(3)}
	if _, changed := SourceDiff(before, before, false); changed {
		t.Errorf("expected no change for identical trees")
	}
	if d, changed := SourceDiff(before, after, false); !changed || !strings.Contains(d, "{+3+}") {
		t.Errorf("expected insertion of 3 in diff, have %q", d)
	}
}

func TestNew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.ast")
	defer teardown()
	//
	for k := ScriptKind; k < maxKind; k++ {
		n := New(k)
		if n == nil || n.Kind() != k {
			t.Fatalf("expected New to create node of kind %s", k)
		}
		for _, f := range Fields(k) {
			if f.List && n.Child(f.Name) == nil {
				t.Errorf("expected %s.%s to be an empty list", k, f.Name)
			}
		}
	}
	if New(NoKind) != nil {
		t.Errorf("expected New(NoKind) to be nil")
	}
}
