package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/astopt"
	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/astopt/ast/sexpr"
	"github.com/npillmayer/astopt/rewrite"
	"github.com/npillmayer/astopt/rewrite/rules"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// errNoTree is reported by commands needing a tree, if none has been entered.
var errNoTree = errors.New("no tree; enter one in s-expression notation first")

// main() starts an interactive CLI ("O.REPL"), where users may enter trees as
// s-expressions and run the optimizer's rules on them.
// A tree may be given as a command line argument, too.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	validate := flag.Bool("validate", true, "Validate tree after every operation")
	limit := flag.Int("limit", 10000, "Maximum number of operations per run")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to OREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel))
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	//
	// set up REPL
	repl, err := readline.New("orepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl: repl,
		opts: []rewrite.Option{
			rewrite.WithValidation(*validate),
			rewrite.WithOperationLimit(*limit),
		},
	}
	if input != "" {
		if err = intp.setTree(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / trees
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	opts     []rewrite.Option
	entered  string // tree as entered, in s-expr notation
	tree     ast.Node
	env      *rewrite.Environment
	stats    rewrite.Stats
	hasStats bool
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or reads a tree, given on a line by itself.
//
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		if err := intp.setTree(line); err != nil {
			return false, err
		}
		intp.printSource()
		return false, nil
	}
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":rules":
		for _, r := range rules.All() {
			pterm.Println(r.Name)
		}
		return false, nil
	case ":load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :load <file>")
		}
		input, err := os.ReadFile(args[0])
		if err != nil {
			return false, err
		}
		if err = intp.setTree(string(input)); err != nil {
			return false, err
		}
		intp.printSource()
		return false, nil
	}
	if intp.tree == nil {
		return false, errNoTree
	}
	switch cmd {
	case ":phase1":
		return false, intp.run("phase-1", rules.PhaseOne())
	case ":phase2":
		return false, intp.run("phase-2", rules.PhaseTwo())
	case ":opt":
		stats, err := astopt.OptimizeWith(intp.tree, intp.env, intp.opts...)
		intp.report(stats)
		return false, err
	case ":rule":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :rule <name>")
		}
		r, ok := rules.ByName(args[0])
		if !ok {
			return false, fmt.Errorf("no rule named %q, see :rules", args[0])
		}
		return false, intp.run(r.Name, []rewrite.Rule{r})
	case ":tree":
		pterm.DefaultTree.WithRoot(treeOf(intp.tree)).Render()
	case ":src":
		intp.printSource()
	case ":sexpr":
		pterm.Println(sexpr.WriteIndented(intp.tree))
	case ":diff":
		before, err := sexpr.Read(intp.entered)
		if err != nil {
			return false, err
		}
		diff, changed := ast.SourceDiff(before, intp.tree, true)
		if !changed {
			pterm.Info.Println("no changes")
			return false, nil
		}
		pterm.Println(diff)
	case ":stats":
		if !intp.hasStats {
			pterm.Info.Println("no optimization run yet")
			return false, nil
		}
		pterm.Info.Println(intp.stats.String())
	case ":reset":
		return false, intp.setTree(intp.entered)
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

// setTree replaces the current tree. Subsequent runs share a fresh
// environment.
func (intp *Intp) setTree(input string) error {
	tree, err := sexpr.Read(input)
	if err != nil {
		return err
	}
	if err = ast.Validate(tree); err != nil {
		return err
	}
	intp.entered = sexpr.Write(tree)
	intp.tree = tree
	intp.env = rewrite.NewEnvironment("orepl")
	intp.hasStats = false
	tracer().Debugf("tree is %s", intp.entered)
	return nil
}

func (intp *Intp) run(name string, rs []rewrite.Rule) error {
	p := rewrite.NewPipeline(name, rs, intp.opts...)
	stats, err := p.Process(intp.tree, intp.env)
	intp.report(stats)
	return err
}

func (intp *Intp) report(stats rewrite.Stats) {
	intp.stats, intp.hasStats = stats, true
	if stats.Changed() {
		intp.printSource()
	} else {
		pterm.Info.Println("no changes")
	}
}

func (intp *Intp) printSource() {
	pterm.Info.Println(ast.Source(intp.tree))
}

// --- Tree display ----------------------------------------------------------

func treeOf(n ast.Node) pterm.TreeNode {
	ll := leveledNode(n, "", pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledNode(n ast.Node, field string, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  field + label(n),
	})
	for _, f := range ast.Fields(n.Kind()) {
		switch c := n.Child(f.Name).(type) {
		case *ast.List:
			ll = append(ll, pterm.LeveledListItem{
				Level: level + 1,
				Text:  fmt.Sprintf("%s [%d]", f.Name, c.Len()),
			})
			for _, item := range c.Nodes() {
				ll = leveledNode(item, "", ll, level+2)
			}
		case ast.Node:
			ll = leveledNode(c, f.Name+": ", ll, level+1)
		}
	}
	return ll
}

// label is the kind of a node, together with its attributes.
func label(n ast.Node) string {
	switch x := n.(type) {
	case *ast.IdentifierExpression:
		return fmt.Sprintf("%s %s", x.Kind(), x.Name)
	case *ast.BindingIdentifier:
		return fmt.Sprintf("%s %s", x.Kind(), x.Name)
	case *ast.FunctionDeclaration:
		return fmt.Sprintf("%s %s", x.Kind(), x.Name)
	case *ast.StaticMemberExpression:
		return fmt.Sprintf("%s .%s", x.Kind(), x.Property)
	case *ast.BinaryExpression:
		return fmt.Sprintf("%s %s", x.Kind(), x.Operator)
	case *ast.UnaryExpression:
		return fmt.Sprintf("%s %s", x.Kind(), x.Operator)
	case *ast.LiteralNumericExpression, *ast.LiteralStringExpression, *ast.LiteralBooleanExpression:
		return fmt.Sprintf("%s %s", n.Kind(), ast.Source(n))
	}
	return n.Kind().String()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
