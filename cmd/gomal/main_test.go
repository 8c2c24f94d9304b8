package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	mal "github.com/mattn/gomal"
)

func TestLoop(t *testing.T) {
	input := "(def! x 2)\n\n(+ x 1)\nfoo\n(inc x)\n"
	want := "user> 2\n" +
		"user> " +
		"user> 3\n" +
		"user> error: symbol not found: 'foo'\n" +
		"user> 3\n" +
		"user> Goodbye!\n"

	env, err := newEnv(&config{maxDepth: mal.DefaultMaxDepth})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := loop(env, strings.NewReader(input), &buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("transcript differs (-want +got):\n%s", diff)
	}
}

func TestNoPrelude(t *testing.T) {
	env, err := newEnv(&config{noPrelude: true, maxDepth: mal.DefaultMaxDepth})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	rep(env, &buf, "(inc 1)")
	if got := buf.String(); got != "error: symbol not found: 'inc'\n" {
		t.Errorf("got %q", got)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		argv []string
		want config
	}{
		{
			argv: []string{"-e", "(+ 1 2)", "-n"},
			want: config{expr: "(+ 1 2)", noPrelude: true, maxDepth: 10000},
		},
		{
			argv: []string{"--max-depth=50", "--trace", "script.mal"},
			want: config{script: "script.mal", trace: true, maxDepth: 50},
		},
		{
			argv: []string{"--history=/tmp/h"},
			want: config{history: "/tmp/h", maxDepth: 10000},
		},
	}
	for _, test := range tests {
		got, err := parseArgs(test.argv)
		if err != nil {
			t.Errorf("%v: %v", test.argv, err)
			continue
		}
		if test.want.history == "" {
			got.history = ""
		}
		if diff := cmp.Diff(test.want, *got, cmp.AllowUnexported(config{})); diff != "" {
			t.Errorf("%v (-want +got):\n%s", test.argv, diff)
		}
	}

	if _, err := parseArgs([]string{"-d", "0"}); err == nil {
		t.Error("want error for a zero depth")
	}
}
