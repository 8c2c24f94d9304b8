package mal

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadLib(t *testing.T) {
	env, err := NewStdEnv()
	if err != nil {
		t.Fatal(err)
	}
	runEvalTests(t, env, []evalTest{
		{input: "(not true)", want: "false"},
		{input: "(not false)", want: "true"},
		{input: "(inc 1)", want: "2"},
		{input: "(dec 1)", want: "0"},
		{input: "(zero? 0)", want: "true"},
		{input: "(pos? -1)", want: "false"},
		{input: "(neg? -1)", want: "true"},
		{input: "(abs -3)", want: "3"},
		{input: "(abs 3)", want: "3"},
		{input: "(max 3 9)", want: "9"},
		{input: "(min 3 9)", want: "3"},
		{input: "(mod 7 3)", want: "1"},
		{input: "(mod -7 3)", want: "-1"},
		{input: "(square 4)", want: "16"},
		{input: "(not 1)", err: ErrCondition},
	})
}

// TestScripts runs every testdir/*.mal a line at a time, the way the REPL
// does, and compares the transcript with the matching .out file.
func TestScripts(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.mal")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no scripts in testdir")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := ioutil.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		env, err := NewStdEnv()
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, ";") {
				continue
			}
			ret, err := Rep(env, line)
			if err != nil {
				buf.WriteString("error: " + err.Error() + "\n")
				continue
			}
			buf.WriteString(ret + "\n")
		}
		got := buf.String()
		b, err = ioutil.ReadFile(fn[:len(fn)-3] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", fn, diff)
		}
	}
}
