package mal

import (
	"fmt"
)

// Special is the handler of a special form. It receives the arguments of
// the form unevaluated.
type Special func(env *Env, args []*Node) (*Node, error)

var specials map[string]Special

func init() {
	specials = map[string]Special{
		"def!": doDef,
		"let*": doLetStar,
		"if":   doIf,
		"do":   doDo,
		"fn*":  doFn,
	}
}

// IsSpecial reports whether name is the head of a special form.
func IsSpecial(name string) bool {
	_, ok := specials[name]
	return ok
}

// Eval evaluates node in this scope.
func (e *Env) Eval(node *Node) (*Node, error) {
	return eval(e, node)
}

func eval(env *Env, node *Node) (*Node, error) {
	st := env.st
	st.depth++
	defer func() { st.depth-- }()
	if st.depth > st.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, st.maxDepth)
	}

	if node.t != NodeList {
		return evalAST(env, node)
	}
	if len(node.items) == 0 {
		return node, nil
	}
	if st.trace != nil {
		st.trace.Print(node)
	}

	head := node.items[0]
	if head.t == NodeSymbol {
		if sp, ok := specials[head.Str()]; ok {
			return sp(env, node.items[1:])
		}
	}

	evaluated, err := evalAST(env, node)
	if err != nil {
		return nil, err
	}
	return apply(evaluated.items[0], evaluated.items[1:])
}

// evalAST evaluates the parts of node without treating a list as a call.
func evalAST(env *Env, node *Node) (*Node, error) {
	switch node.t {
	case NodeSymbol:
		v, ok := env.Lookup(node.Str())
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrUnbound, node.Str())
		}
		return v, nil
	case NodeList, NodeVector:
		items, err := evalSeq(env, node.items)
		if err != nil {
			return nil, err
		}
		return &Node{t: node.t, items: items}, nil
	case NodeMap:
		m := MakeMap()
		for _, k := range node.keys {
			v, err := eval(env, node.vals[k])
			if err != nil {
				return nil, err
			}
			m.put(k, v)
		}
		return m, nil
	case NodeNil, NodeBool, NodeInt, NodeString, NodeClosure, NodeBuiltin:
		return node, nil
	}
	return nil, fmt.Errorf("cannot evaluate %v", node.t)
}

func evalSeq(env *Env, nodes []*Node) ([]*Node, error) {
	ret := make([]*Node, len(nodes))
	for i, n := range nodes {
		v, err := eval(env, n)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// Apply invokes a closure or builtin with already evaluated arguments.
func Apply(fn *Node, args []*Node) (*Node, error) {
	return apply(fn, args)
}

func apply(fn *Node, args []*Node) (*Node, error) {
	switch fn.t {
	case NodeBuiltin:
		return fn.fn(args)
	case NodeClosure:
		if len(args) != len(fn.params) {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrArity, len(fn.params), len(args))
		}
		scope := NewEnv(fn.e)
		for i, p := range fn.params {
			scope.Define(p, args[i])
		}
		return eval(scope, fn.body)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotInvokable, Print(fn))
}

func doDef(env *Env, args []*Node) (*Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w for def!: expected a name and a value", ErrSyntax)
	}
	if args[0].t != NodeSymbol {
		return nil, fmt.Errorf("%w for def!: %s is not a symbol", ErrSyntax, Print(args[0]))
	}
	v, err := eval(env, args[1])
	if err != nil {
		return nil, err
	}
	return env.Define(args[0].Str(), v), nil
}

func doLetStar(env *Env, args []*Node) (*Node, error) {
	if len(args) == 0 || !args[0].isSeq() {
		return nil, fmt.Errorf("%w for let*: bindings must be a list or vector", ErrSyntax)
	}
	bindings := args[0].items
	if len(bindings)%2 != 0 {
		return nil, fmt.Errorf("%w for let*: odd number of binding forms", ErrSyntax)
	}

	scope := NewEnv(env)
	for i := 0; i < len(bindings); i += 2 {
		name := bindings[i]
		if name.t != NodeSymbol {
			return nil, fmt.Errorf("%w for let*: %s is not a symbol", ErrSyntax, Print(name))
		}
		v, err := eval(scope, bindings[i+1])
		if err != nil {
			return nil, err
		}
		scope.Define(name.Str(), v)
	}
	return doDo(scope, args[1:])
}

func doIf(env *Env, args []*Node) (*Node, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w for if: expected a condition and a branch", ErrSyntax)
	}
	cond, err := eval(env, args[0])
	if err != nil {
		return nil, err
	}
	if cond.t != NodeBool {
		return nil, fmt.Errorf("%w, got %v", ErrCondition, cond.t)
	}
	if cond.Bool() {
		return eval(env, args[1])
	}
	return doDo(env, args[2:])
}

func doDo(env *Env, args []*Node) (*Node, error) {
	ret := Nil
	for _, arg := range args {
		v, err := eval(env, arg)
		if err != nil {
			return nil, err
		}
		ret = v
	}
	return ret, nil
}

func doFn(env *Env, args []*Node) (*Node, error) {
	if len(args) == 0 || !args[0].isSeq() {
		return nil, fmt.Errorf("%w for fn*: parameters must be a list or vector", ErrSyntax)
	}
	params := make([]string, len(args[0].items))
	for i, p := range args[0].items {
		if p.t != NodeSymbol {
			return nil, fmt.Errorf("%w for fn*: parameter %s is not a symbol", ErrSyntax, Print(p))
		}
		params[i] = p.Str()
	}
	body := make([]*Node, 0, len(args))
	body = append(body, MakeSymbol("do"))
	body = append(body, args[1:]...)
	return makeClosure(env, params, MakeList(body...)), nil
}
