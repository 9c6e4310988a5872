package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Pipeline applies an ordered list of rules to a tree until no rule wants to
// change anything. Pipelines hold no per-run state and may be re-used.
type Pipeline struct {
	name         string
	rules        []Rule
	validate     bool
	limit        int
	level        tracing.TraceLevel
	hasLevel     bool
	panicOnError bool
}

// NewPipeline creates a pipeline for a list of rules. Rules are tried in
// order; the first one returning an operation wins.
func NewPipeline(name string, rules []Rule, opts ...Option) *Pipeline {
	p := &Pipeline{
		name:         name,
		rules:        append([]Rule(nil), rules...),
		validate:     gconf.GetBool("rewrite-validate"),
		panicOnError: gconf.GetBool("panic-on-rewrite-error"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the name of the pipeline.
func (p *Pipeline) Name() string {
	return p.name
}

// Rules returns the rules of the pipeline.
func (p *Pipeline) Rules() []Rule {
	return p.rules
}

// Process rewrites the tree at root in place. If env is nil, a new
// environment is created. Callers running more than one pipeline on a tree
// should pass the same environment to all of them.
//
// The first error of an operation (or of a validation) aborts the run.
// The tree is left in the state it had when the error occurred.
func (p *Pipeline) Process(root ast.Node, env *Environment) (stats Stats, err error) {
	if p.hasLevel {
		level := tracer().GetTraceLevel()
		tracer().SetTraceLevel(p.level)
		defer tracer().SetTraceLevel(level)
	}
	if root == nil {
		return Stats{}, fmt.Errorf("pipeline %s: %w: empty tree", p.name, ast.ErrInvalidTree)
	}
	if env == nil {
		env = NewEnvironment(p.name)
	}
	r := &run{
		pipeline: p,
		env:      env,
		root:     root,
		worklist: arraylist.New(),
		stats:    Stats{PerRule: make(map[string]int), Before: ast.Fingerprint(root)},
	}
	if p.validate {
		if err = ast.Validate(root); err != nil {
			return r.stats, fmt.Errorf("pipeline %s: %w", p.name, err)
		}
	}
	tracer().Debugf("pipeline %s: start", p.name)
	r.push(Root(root))
	err = r.loop()
	r.stats.After = ast.Fingerprint(root)
	tracer().Infof("pipeline %s: %s", p.name, r.stats)
	if err != nil {
		err = fmt.Errorf("pipeline %s: %w", p.name, err)
		if p.panicOnError {
			panic(err)
		}
	}
	return r.stats, err
}

// --- Runs ------------------------------------------------------------------

// task is a pending traversal, identified by the element it is rooted at.
type task struct {
	walk *Traversal
	key  ast.Element
}

type run struct {
	pipeline *Pipeline
	env      *Environment
	root     ast.Node
	worklist *arraylist.List // of *task, front first
	stats    Stats
}

func (r *run) loop() error {
	for !r.worklist.Empty() {
		front, _ := r.worklist.Get(0)
		t := front.(*task)
		loc, ok := t.walk.Next()
		if !ok {
			r.worklist.Remove(0)
			continue
		}
		if err := r.dispatch(loc); err != nil {
			return err
		}
	}
	return nil
}

// dispatch offers a location to the rules, in order. At most one operation
// is applied per call.
func (r *run) dispatch(loc Location) error {
	fresh, ok := loc.Refresh()
	if !ok {
		tracer().Debugf("skipping detached %s", describe(loc.elem))
		r.stats.Skipped++
		return nil
	}
	loc = fresh
	r.stats.Visits++
	for _, rule := range r.pipeline.rules {
		op := rule.Rewrite(loc, r.env)
		if op == nil {
			continue
		}
		if r.pipeline.limit > 0 && r.stats.Operations >= r.pipeline.limit {
			return fmt.Errorf("%w: %d operations, rule %s at %s", ErrLimit,
				r.stats.Operations, rule.Name, loc)
		}
		tracer().Debugf("rule %s: %s", rule.Name, op)
		if err := op.Apply(r.env); err != nil {
			return fmt.Errorf("rule %s: %w", rule.Name, err)
		}
		r.stats.Operations++
		r.stats.PerRule[rule.Name]++
		if r.pipeline.validate {
			if err := ast.Validate(r.root); err != nil {
				return fmt.Errorf("after rule %s: %w", rule.Name, err)
			}
		}
		r.invalidate(op)
		return nil
	}
	return nil
}

// invalidate schedules a new traversal for every location invalidated by op,
// ahead of all pending work. Pending traversals rooted at an invalidated
// element are discarded.
func (r *run) invalidate(op Operation) {
	seen := make(map[ast.Element]bool)
	var tainted []Location
	for _, dirty := range op.Invalidated() {
		for dirty.List() != nil { // lists are re-visited from their owner
			parent, ok := dirty.Parent()
			if !ok {
				break
			}
			dirty = parent
		}
		fresh, ok := dirty.Refresh()
		if !ok || fresh.IsEmpty() || seen[fresh.elem] {
			continue
		}
		seen[fresh.elem] = true
		tainted = append(tainted, fresh)
	}
	for _, dirty := range tainted {
		r.discard(dirty.elem)
		r.push(dirty)
	}
}

func (r *run) push(loc Location) {
	tracer().Debugf("schedule walk of %s", loc)
	r.worklist.Insert(0, &task{walk: DepthFirst(loc, Visitor{}), key: loc.elem})
	r.stats.Tasks++
}

func (r *run) discard(key ast.Element) {
	var stale []int
	it := r.worklist.Iterator()
	for it.Next() {
		if it.Value().(*task).key == key {
			stale = append(stale, it.Index())
		}
	}
	for i := len(stale) - 1; i >= 0; i-- {
		r.worklist.Remove(stale[i])
		r.stats.Discarded++
	}
}

// --- Statistics ------------------------------------------------------------

// Stats reports on a pipeline run.
type Stats struct {
	Visits     int            // locations offered to the rules
	Skipped    int            // locations skipped because they had been detached
	Operations int            // operations applied
	PerRule    map[string]int // operations applied, per rule name
	Tasks      int            // traversals scheduled
	Discarded  int            // pending traversals discarded as stale
	Before     string         // fingerprint of the tree before the run
	After      string         // fingerprint of the tree after the run
}

// Changed is true if the tree has been changed by the run.
func (s Stats) Changed() bool {
	return s.Operations > 0 && s.Before != s.After
}

// Add accumulates the counters of another run into s. The fingerprints
// span both runs.
func (s *Stats) Add(other Stats) {
	if s.PerRule == nil {
		s.PerRule = make(map[string]int)
	}
	if s.Before == "" {
		s.Before = other.Before
	}
	s.After = other.After
	s.Visits += other.Visits
	s.Skipped += other.Skipped
	s.Operations += other.Operations
	s.Tasks += other.Tasks
	s.Discarded += other.Discarded
	for name, n := range other.PerRule {
		s.PerRule[name] += n
	}
}

func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d visits, %d skipped, %d operations, %d tasks, %d discarded",
		s.Visits, s.Skipped, s.Operations, s.Tasks, s.Discarded)
	names := make([]string, 0, len(s.PerRule))
	for name := range s.PerRule {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "; %s=%d", name, s.PerRule[name])
	}
	return sb.String()
}
