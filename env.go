package mal

import (
	"io"
	"log"
)

// DefaultMaxDepth is the evaluation depth allowed unless SetMaxDepth says
// otherwise.
const DefaultMaxDepth = 10000

// evalState is shared by every scope descending from one root.
type evalState struct {
	depth    int
	maxDepth int
	trace    *log.Logger
}

// Env is one scope of bindings. Lookups that miss fall through to the
// outer scope. Scopes are kept alive by whatever still refers to them: a
// child scope or a closure.
type Env struct {
	vars  map[string]*Node
	outer *Env
	st    *evalState
}

// NewEnv creates a scope whose outer scope is outer. A nil outer creates an
// empty root scope without builtins.
func NewEnv(outer *Env) *Env {
	st := &evalState{maxDepth: DefaultMaxDepth}
	if outer != nil {
		st = outer.st
	}
	return &Env{
		vars:  make(map[string]*Node),
		outer: outer,
		st:    st,
	}
}

// Define binds name in this scope only and returns value.
func (e *Env) Define(name string, value *Node) *Node {
	e.vars[name] = value
	return value
}

func (e *Env) find(name string) *Env {
	for s := e; s != nil; s = s.outer {
		if _, ok := s.vars[name]; ok {
			return s
		}
	}
	return nil
}

// Lookup returns the innermost binding of name.
func (e *Env) Lookup(name string) (*Node, bool) {
	s := e.find(name)
	if s == nil {
		return nil, false
	}
	return s.vars[name], true
}

func (e *Env) Outer() *Env {
	return e.outer
}

// SetMaxDepth changes the evaluation depth limit for every scope sharing
// this root.
func (e *Env) SetMaxDepth(n int) {
	e.st.maxDepth = n
}

// SetTrace logs each evaluated list to w. A nil w turns tracing off.
func (e *Env) SetTrace(w io.Writer) {
	if w == nil {
		e.st.trace = nil
		return
	}
	e.st.trace = log.New(w, "eval: ", 0)
}
