package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	mal "github.com/mattn/gomal"
	"github.com/peterh/liner"
)

const version = "0.1.0"

const usage = `gomal

Usage:
  gomal [options] [SCRIPT]
  gomal -h | --help
  gomal --version

Options:
  -e EXPR, --eval=EXPR  Evaluate EXPR, print the result and exit.
  -n, --no-prelude      Do not load the embedded library.
  -t, --trace           Log every evaluated list to stderr.
  -d N, --max-depth=N   Maximum evaluation depth [default: 10000].
  --history=FILE        Line editing history file.
  -h, --help            Display this help.
  --version             Print gomal version.

Without SCRIPT or --eval, lines are read from stdin. When stdin is a
terminal, line editing and history are enabled.
`

const prompt = "user> "

type config struct {
	script    string
	expr      string
	noPrelude bool
	trace     bool
	maxDepth  int
	history   string
}

func parseArgs(argv []string) (*config, error) {
	opts, err := docopt.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}
	var cfg config
	cfg.script, _ = opts.String("SCRIPT")
	cfg.expr, _ = opts.String("--eval")
	cfg.noPrelude, _ = opts.Bool("--no-prelude")
	cfg.trace, _ = opts.Bool("--trace")
	cfg.history, _ = opts.String("--history")
	cfg.maxDepth, err = opts.Int("--max-depth")
	if err != nil || cfg.maxDepth <= 0 {
		return nil, fmt.Errorf("invalid --max-depth: %v", opts["--max-depth"])
	}
	if cfg.history == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.history = filepath.Join(home, ".gomal_history")
		}
	}
	return &cfg, nil
}

func newEnv(cfg *config) (*mal.Env, error) {
	env := mal.NewRootEnv()
	if !cfg.noPrelude {
		if err := mal.LoadLib(env); err != nil {
			return nil, err
		}
	}
	env.SetMaxDepth(cfg.maxDepth)
	if cfg.trace {
		env.SetTrace(os.Stderr)
	}
	return env, nil
}

// rep evaluates one input line and writes the result or the error.
func rep(env *mal.Env, w io.Writer, line string) {
	ret, err := mal.Rep(env, line)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintln(w, ret)
}

func loop(env *mal.Env, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rep(env, w, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Goodbye!")
	return nil
}

func interactive(env *mal.Env, history string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			cli.ReadHistory(f)
			f.Close()
		}
	}

	defer func() {
		if history == "" {
			return
		}
		f, err := os.Create(history)
		if err != nil {
			log.Print(err)
			return
		}
		defer f.Close()
		if _, err := cli.WriteHistory(f); err != nil {
			log.Print(err)
		}
	}()

	for {
		line, err := cli.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			fmt.Println("Goodbye!")
			return nil
		default:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cli.AppendHistory(line)
		rep(env, os.Stdout, line)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gomal: ")

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	env, err := newEnv(cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case cfg.expr != "":
		ret, err := mal.Rep(env, cfg.expr)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ret)
	case cfg.script != "":
		b, err := ioutil.ReadFile(cfg.script)
		if err != nil {
			log.Fatal(err)
		}
		if _, err = mal.EvalString(env, string(b)); err != nil {
			log.Fatalf("%s: %v", cfg.script, err)
		}
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		if err := interactive(env, cfg.history); err != nil {
			log.Fatal(err)
		}
	default:
		if err := loop(env, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}
