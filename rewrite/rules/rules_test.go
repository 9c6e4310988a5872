package rules

import (
	"errors"
	"testing"

	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/astopt/ast/sexpr"
	"github.com/npillmayer/astopt/rewrite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// run reads a script, runs a single rule set on it and returns the source of
// the result.
func run(t *testing.T, input string, rules ...rewrite.Rule) (string, rewrite.Stats) {
	t.Helper()
	tree := sexpr.MustRead(input)
	p := rewrite.NewPipeline(t.Name(), rules, rewrite.WithValidation(true), rewrite.WithOperationLimit(100))
	stats, err := p.Process(tree, nil)
	if err != nil {
		t.Fatalf("%s: %v", input, err)
	}
	return ast.Source(tree), stats
}

type fixture struct {
	input  string
	output string
}

func check(t *testing.T, fixtures []fixture, rules ...rewrite.Rule) {
	t.Helper()
	for i, f := range fixtures {
		if src, _ := run(t, f.input, rules...); src != f.output {
			t.Errorf("fixture #%d: expected %s, have %s", i, f.output, src)
		}
	}
}

func TestSequenceFusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(Script [(ExpressionStatement (CallExpression a)) (ExpressionStatement (CallExpression b))
		    (ExpressionStatement (CallExpression c))])`,
			`a(), b(), c();`},
		{`(Script [(ExpressionStatement a) (ExpressionStatement b) (ReturnStatement x)
		    (ExpressionStatement c) (ExpressionStatement d) (ExpressionStatement e)])`,
			`a, b; return x; c, d, e;`},
		{`(Script [(ExpressionStatement a) (EmptyStatement) (ExpressionStatement b)])`,
			`a; ; b;`},
	}, SequenceFusion())
	// left-associated
	tree := sexpr.MustRead(`(Script [(ExpressionStatement a) (ExpressionStatement b) (ExpressionStatement c)])`)
	if _, err := rewrite.NewPipeline("seq", []rewrite.Rule{SequenceFusion()}).Process(tree, nil); err != nil {
		t.Fatal(err)
	}
	expected := `(Script [(ExpressionStatement (BinaryExpression , (BinaryExpression , a b) c))])`
	if out := sexpr.Write(tree); out != expected {
		t.Errorf("expected %s, have %s", expected, out)
	}
}

func TestDeadCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(Script [(ReturnStatement a) (ExpressionStatement (CallExpression f))
		    (ExpressionStatement (CallExpression g))])`,
			`return a;`},
		{`(Script [(ExpressionStatement a) (ThrowStatement e) (ExpressionStatement b)])`,
			`a; throw e;`},
		{`(WhileStatement t (BlockStatement (Block [(BreakStatement) (ExpressionStatement x)
		    (ContinueStatement)])))`,
			`while (t) { break; }`},
		{`(Script [(ExpressionStatement a) (ReturnStatement)])`,
			`a; return;`},
	}, DeadCode())
}

func TestDeblock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(Script [(BlockStatement (Block [(ExpressionStatement a)]))])`, `a;`},
		{`(Script [(BlockStatement (Block []))])`, `;`},
		{`(Script [(BlockStatement (Block [(BlockStatement (Block [(ReturnStatement 1)]))]))])`, `return 1;`},
		{`(Script [(BlockStatement (Block [(ExpressionStatement a) (ExpressionStatement b)]))])`, `{ a; b; }`},
	}, Deblock())
}

func TestCompletionFusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(Script [(ExpressionStatement (CallExpression f)) (ReturnStatement x)])`, `return f(), x;`},
		{`(Script [(ExpressionStatement (CallExpression f)) (ThrowStatement x)])`, `throw f(), x;`},
		{`(Script [(ExpressionStatement a) (ExpressionStatement b) (ReturnStatement x)])`, `return a, b, x;`},
		{`(Script [(ExpressionStatement (CallExpression f)) (ReturnStatement)])`, `f(); return;`},
	}, CompletionFusion())
}

func TestIfToConditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(Script [(IfStatement t (ReturnStatement 1) (ReturnStatement 2))])`, `return t ? 1 : 2;`},
		{`(Script [(IfStatement t (ThrowStatement a) (ThrowStatement b))])`, `throw t ? a : b;`},
		{`(Script [(IfStatement t (ExpressionStatement (CallExpression a)) (ExpressionStatement (CallExpression b)))])`,
			`t ? a() : b();`},
		{`(Script [(IfStatement t (ReturnStatement) (ReturnStatement 2))])`, `return t ? void 0 : 2;`},
		{`(Script [(IfStatement t (ReturnStatement 1))])`, `if (t) return 1;`},
		{`(Script [(IfStatement t (ReturnStatement 1) (ThrowStatement 2))])`, `if (t) return 1; else throw 2;`},
		{`(Script [(IfStatement t (ReturnStatement) (ReturnStatement))])`, `if (t) return; else return;`},
	}, IfToConditional())
}

func TestFoldConstant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(ExpressionStatement (BinaryExpression + 1 (BinaryExpression * 2 3)))`, `7;`},
		{`(ExpressionStatement (BinaryExpression + "a" 1))`, `"a1";`},
		{`(ExpressionStatement (BinaryExpression / 0 0))`, `0 / 0;`},
		{`(ExpressionStatement (BinaryExpression / 1 0))`, `1 / 0;`},
		{`(ExpressionStatement (BinaryExpression / 1 (UnaryExpression - 0)))`, `1 / -0;`},
		{`(ExpressionStatement (BinaryExpression - 2 5))`, `-3;`},
		{`(ExpressionStatement (UnaryExpression ! 0))`, `true;`},
		{`(ExpressionStatement (UnaryExpression typeof null))`, `"object";`},
		{`(ExpressionStatement (UnaryExpression void (CallExpression f)))`, `void f();`},
		{`(ExpressionStatement (BinaryExpression + a 1))`, `a + 1;`},
		{`(ExpressionStatement (BinaryExpression , 1 2))`, `1, 2;`},
		{`(ExpressionStatement (BinaryExpression === (BinaryExpression + 1 1) 2))`, `true;`},
	}, FoldConstant())
}

func TestFoldedInfinitiesDistinct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	tree := sexpr.MustRead(`(ExpressionStatement (CallExpression f [
	    (BinaryExpression / 0 0) (BinaryExpression / 1 0) (BinaryExpression / 1 (UnaryExpression - 0))
	    (BinaryExpression / 2 0)]))`)
	env := rewrite.NewEnvironment("inf")
	p := rewrite.NewPipeline("fold", []rewrite.Rule{FoldConstant()})
	if _, err := p.Process(tree, env); err != nil {
		t.Fatal(err)
	}
	args := tree.(*ast.ExpressionStatement).Expression.(*ast.CallExpression).Arguments
	nan, inf, ninf, inf2 := args.At(0), args.At(1), args.At(2), args.At(3)
	if nan == inf || nan == ninf || inf == ninf {
		t.Errorf("expected NaN, Infinity and -Infinity fragments to be distinct")
	}
	if inf != inf2 {
		t.Errorf("expected 1/0 and 2/0 to fold to the identical fragment")
	}
	for i := 0; i < args.Len(); i++ {
		if !env.Constants.IsConstant(args.At(i)) {
			t.Errorf("expected argument #%d to be canonical", i)
		}
	}
}

func TestFoldConditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	check(t, []fixture{
		{`(ExpressionStatement (ConditionalExpression true a b))`, `a;`},
		{`(ExpressionStatement (ConditionalExpression 0 a b))`, `b;`},
		{`(ExpressionStatement (ConditionalExpression "" a b))`, `b;`},
		{`(ExpressionStatement (ConditionalExpression x a b))`, `x ? a : b;`},
		{`(ExpressionStatement (UnaryExpression - 5))`, `-5;`},
		{`(ExpressionStatement (UnaryExpression ! true))`, `false;`},
	}, FoldConditional())
}

func TestCanonicalFragmentsAreStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	// canonical -0 and void 0 are unary expressions with constant operands
	src, stats := run(t, `(ExpressionStatement (CallExpression f [(UnaryExpression - 0) (UnaryExpression void 0)]))`,
		FoldConditional(), FoldConstant())
	if src != `f(-0, void 0);` {
		t.Errorf("unexpected result %s", src)
	}
	if stats.Operations != 2 {
		t.Errorf("expected each fold to happen once, have %s", stats)
	}
}

func TestPhases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	fixtures := []fixture{
		{`(Script [(ExpressionStatement (CallExpression a)) (ExpressionStatement (CallExpression b))
		    (ExpressionStatement (CallExpression c))])`,
			`a(), b(), c();`},
		{`(Script [(BlockStatement (Block [(ReturnStatement a) (ExpressionStatement (CallExpression f))]))
		    (ExpressionStatement (CallExpression g))])`,
			`return a;`},
		{`(Script [(IfStatement t (BlockStatement (Block [(ReturnStatement 1)])) (ReturnStatement 2))])`,
			`return t ? 1 : 2;`},
		{`(Script [(ExpressionStatement (CallExpression f)) (IfStatement (BinaryExpression < 1 2)
		    (BlockStatement (Block [(ReturnStatement x)])) (ReturnStatement y))])`,
			`return f(), x;`},
		{`(FunctionDeclaration f [x] (FunctionBody [(IfStatement x (ThrowStatement "a") (ThrowStatement "b"))]))`,
			`function f(x) { throw x ? "a" : "b"; }`},
		{`(Script [(ExpressionStatement a) (ExpressionStatement (BinaryExpression , b c)) (ReturnStatement d)])`,
			`return a, b, c, d;`},
	}
	for i, f := range fixtures {
		tree := sexpr.MustRead(f.input)
		env := rewrite.NewEnvironment("phases")
		for j, phase := range Phases() {
			p := rewrite.NewPipeline("phase", phase, rewrite.WithValidation(true), rewrite.WithOperationLimit(100))
			if _, err := p.Process(tree, env); err != nil {
				t.Fatalf("fixture #%d, phase %d: %v", i, j+1, err)
			}
		}
		if src := ast.Source(tree); src != f.output {
			t.Errorf("fixture #%d: expected %s, have %s", i, f.output, src)
		}
		// a second round must be a no-op
		for j, phase := range Phases() {
			stats, err := rewrite.NewPipeline("again", phase).Process(tree, env)
			if err != nil || stats.Operations != 0 {
				t.Errorf("fixture #%d, phase %d: expected no-op, have %s, %v", i, j+1, stats, err)
			}
		}
	}
}

func TestByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	if len(All()) != 7 {
		t.Errorf("expected 7 rules in the catalog, have %d", len(All()))
	}
	if r, ok := ByName("fold-constant"); !ok || r.Name != "fold-constant" {
		t.Errorf("expected to find rule fold-constant")
	}
	if _, ok := ByName("inline"); ok {
		t.Errorf("expected no rule named inline")
	}
}

func TestRulesDoNotEditRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astopt.rules")
	defer teardown()
	//
	// a block statement as root cannot be replaced
	tree := sexpr.MustRead(`(BlockStatement (Block [(ExpressionStatement a)]))`)
	_, err := rewrite.NewPipeline("root", []rewrite.Rule{Deblock()}).Process(tree, nil)
	if !errors.Is(err, rewrite.ErrNoParent) {
		t.Errorf("expected ErrNoParent, have %v", err)
	}
}
