package mal

import (
	"testing"
)

func TestEnvLookup(t *testing.T) {
	root := NewEnv(nil)
	root.Define("a", MakeInt(1))
	root.Define("b", MakeInt(2))

	child := NewEnv(root)
	child.Define("b", MakeInt(20))

	tests := []struct {
		env  *Env
		name string
		want *Node
	}{
		{root, "a", MakeInt(1)},
		{root, "b", MakeInt(2)},
		{child, "a", MakeInt(1)},
		{child, "b", MakeInt(20)},
		{NewEnv(child), "b", MakeInt(20)},
	}
	for _, test := range tests {
		got, ok := test.env.Lookup(test.name)
		if !ok {
			t.Errorf("%s not found", test.name)
			continue
		}
		if !Equal(got, test.want) {
			t.Errorf("want %v for %s but got %v", test.want, test.name, got)
		}
	}

	if _, ok := root.Lookup("c"); ok {
		t.Error("c should be unbound")
	}
	child.Define("c", MakeInt(3))
	if _, ok := root.Lookup("c"); ok {
		t.Error("define in a child scope leaked into its outer scope")
	}
	if child.Outer() != root {
		t.Error("outer scope of child is not root")
	}
}

func TestEnvDefineOverwrites(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", MakeInt(1))
	if got := env.Define("x", MakeString("two")); got.Str() != "two" {
		t.Fatalf("define returned %v", got)
	}
	got, _ := env.Lookup("x")
	if got.Type() != NodeString {
		t.Errorf("want string but got %v", got.Type())
	}
}
