package mal

import (
	"fmt"
)

var builtins map[string]Builtin

func init() {
	builtins = map[string]Builtin{
		"+":  arith("+", fold(func(a, b int64) int64 { return a + b }, 0)),
		"-":  arith("-", reduce(func(a, b int64) (int64, error) { return a - b, nil })),
		"*":  arith("*", fold(func(a, b int64) int64 { return a * b }, 1)),
		"/":  arith("/", reduce(div)),
		"=":  doEqual,
		"<":  compare("<", func(c int) bool { return c < 0 }),
		"<=": compare("<=", func(c int) bool { return c <= 0 }),
		">":  compare(">", func(c int) bool { return c > 0 }),
		">=": compare(">=", func(c int) bool { return c >= 0 }),
	}
}

// NewRootEnv returns a root scope holding the builtin operators.
func NewRootEnv() *Env {
	env := NewEnv(nil)
	for name, fn := range builtins {
		env.Define(name, MakeBuiltin(name, fn))
	}
	return env
}

func div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivZero
	}
	return a / b, nil
}

func ints(name string, args []*Node) ([]int64, error) {
	ns := make([]int64, len(args))
	for i, arg := range args {
		if arg.t != NodeInt {
			return nil, fmt.Errorf("%w: %s expects integers, got %v", ErrType, name, arg.t)
		}
		ns[i] = arg.Int()
	}
	return ns, nil
}

func arith(name string, op func([]int64) (int64, error)) Builtin {
	return func(args []*Node) (*Node, error) {
		ns, err := ints(name, args)
		if err != nil {
			return nil, err
		}
		r, err := op(ns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return MakeInt(r), nil
	}
}

func fold(f func(a, b int64) int64, identity int64) func([]int64) (int64, error) {
	return func(ns []int64) (int64, error) {
		acc := identity
		for _, n := range ns {
			acc = f(acc, n)
		}
		return acc, nil
	}
}

func reduce(f func(a, b int64) (int64, error)) func([]int64) (int64, error) {
	return func(ns []int64) (int64, error) {
		if len(ns) == 0 {
			return 0, fmt.Errorf("%w: expected at least 1, got 0", ErrArity)
		}
		acc := ns[0]
		for _, n := range ns[1:] {
			var err error
			acc, err = f(acc, n)
			if err != nil {
				return 0, err
			}
		}
		return acc, nil
	}
}

func doEqual(args []*Node) (*Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("=: %w: expected 2, got %d", ErrArity, len(args))
	}
	return MakeBool(Equal(args[0], args[1])), nil
}

// compare orders two integers. Any other pair is neither less, equal nor
// greater, so every ordering test on it is false.
func compare(name string, test func(c int) bool) Builtin {
	return func(args []*Node) (*Node, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: %w: expected 2, got %d", name, ErrArity, len(args))
		}
		a, b := args[0], args[1]
		if a.t != NodeInt || b.t != NodeInt {
			return False, nil
		}
		c := 0
		switch {
		case a.Int() < b.Int():
			c = -1
		case a.Int() > b.Int():
			c = 1
		}
		return MakeBool(test(c)), nil
	}
}
