package mal

import (
	"fmt"
	"io/ioutil"
	"path"

	_ "github.com/mattn/gomal/statik"
	"github.com/rakyll/statik/fs"
)

//go:generate statik -src=lib -f

// LoadLib evaluates the embedded library files into env.
func LoadLib(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".mal" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		b, err := ioutil.ReadAll(f)
		f.Close()
		if err != nil {
			return err
		}
		if _, err = EvalString(env, string(b)); err != nil {
			return fmt.Errorf("%s: %w", fi.Name(), err)
		}
	}

	return nil
}

// NewStdEnv returns a root scope with the builtins and the embedded library.
func NewStdEnv() (*Env, error) {
	env := NewRootEnv()
	if err := LoadLib(env); err != nil {
		return nil, err
	}
	return env, nil
}
