package mal

import (
	"testing"
)

func TestBuiltinArithmetic(t *testing.T) {
	runEvalTests(t, NewRootEnv(), []evalTest{
		{input: "(+)", want: "0"},
		{input: "(*)", want: "1"},
		{input: "(+ 1)", want: "1"},
		{input: "(+ 1 2 3 4)", want: "10"},
		{input: "(* 2 3 4)", want: "24"},
		{input: "(- 5)", want: "5"},
		{input: "(- 10 1 2)", want: "7"},
		{input: "(/ 5)", want: "5"},
		{input: "(/ 20 2 3)", want: "3"},
		{input: "(/ -7 2)", want: "-3"},
		{input: "(- 0 9223372036854775807 1)", want: "-9223372036854775808"},
		{input: "(-)", err: ErrArity},
		{input: "(/)", err: ErrArity},
		{input: "(/ 1 0)", err: ErrDivZero},
		{input: `(+ 1 "a")`, err: ErrType},
		{input: "(* 1 nil)", err: ErrType},
		{input: "(- [1])", err: ErrType},
		{input: "(/ true 1)", err: ErrType},
	})
}

func TestBuiltinCompare(t *testing.T) {
	runEvalTests(t, NewRootEnv(), []evalTest{
		{input: "(= 1 1)", want: "true"},
		{input: "(= 1 2)", want: "false"},
		{input: `(= 1 "1")`, want: "false"},
		{input: `(= "a" "a")`, want: "true"},
		{input: "(= :a :a)", want: "true"},
		{input: `(= :a "a")`, want: "false"},
		{input: "(= nil nil)", want: "true"},
		{input: "(= nil false)", want: "false"},
		{input: "(= [1 [2]] [1 [2]])", want: "true"},
		{input: "(= [1 2] [1 3])", want: "false"},
		{input: `(= {"a" 1} {"a" 1})`, want: "true"},
		{input: `(= {"a" 1} {"a" 2})`, want: "false"},
		{input: "(= + +)", want: "true"},
		{input: "(< 1 2)", want: "true"},
		{input: "(< 2 1)", want: "false"},
		{input: "(<= 2 2)", want: "true"},
		{input: "(<= 3 2)", want: "false"},
		{input: "(> 1 2)", want: "false"},
		{input: "(> 3 2)", want: "true"},
		{input: "(>= 2 2)", want: "true"},
		{input: "(>= 1 2)", want: "false"},
		{input: `(< 1 "a")`, want: "false"},
		{input: `(> 1 "a")`, want: "false"},
		{input: `(<= "a" "a")`, want: "false"},
		{input: `(>= "a" "a")`, want: "false"},
		{input: "(=)", err: ErrArity},
		{input: "(= 1 1 1)", err: ErrArity},
		{input: "(< 1)", err: ErrArity},
		{input: "(>= 1 2 3)", err: ErrArity},
	})
}
