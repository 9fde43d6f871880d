package cmd

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/kyouko-taiga/go-stew/internal/booleans"
	"github.com/kyouko-taiga/go-stew/internal/naturals"
	"github.com/kyouko-taiga/go-stew/pkg/stew"
)

// demoSpec bundles the registry loaded by loadDemoSpec alongside the demo
// sorts' own descriptors, so commands can resolve CLI argument strings
// against the sort-specific generators (Bool's true/false, Nat's
// zero/suc-as-integer) without re-walking the registry.
type demoSpec struct {
	Registry *stew.Registry
	Bool     *booleans.Sorts
	Nat      *naturals.Sorts
}

// loadDemoSpec builds the built-in demo specification (Bool and Nat) used
// by the eval, translate, and repl subcommands (§1's "loads a built-in demo
// specification").
func loadDemoSpec(verbose bool) (*demoSpec, error) {
	var logger log.FieldLogger

	if verbose {
		l := log.New()
		l.SetLevel(log.DebugLevel)
		logger = l
	}

	reg := stew.NewRegistry(logger)

	b, err := booleans.Define(reg)
	if err != nil {
		return nil, err
	}

	n, err := naturals.Define(reg)
	if err != nil {
		return nil, err
	}

	return &demoSpec{Registry: reg, Bool: b, Nat: n}, nil
}

// parseArg converts a CLI argument string into a ground term of the given
// sort: a non-negative integer literal for Nat, or "true"/"false" for Bool.
func (d *demoSpec) parseArg(sortName, raw string) (stew.Term, error) {
	switch sortName {
	case d.Nat.Sort.Name:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, stew.NewArgumentError("%q is not a non-negative integer literal for Nat", raw)
		}

		return d.Nat.Of(n)
	case d.Bool.Sort.Name:
		switch raw {
		case "true":
			return d.Bool.True.New()
		case "false":
			return d.Bool.False.New()
		default:
			return nil, stew.NewArgumentError("%q is not `true` or `false` for Bool", raw)
		}
	default:
		return nil, stew.NewArgumentError("no CLI literal syntax known for sort %s", sortName)
	}
}

// render renders a ground Nat term back to a plain integer string when
// possible, falling back to the engine's pretty-printer otherwise — purely
// a CLI convenience, not part of the rewriting engine.
func (d *demoSpec) render(t stew.Term) string {
	if t.SortName() != d.Nat.Sort.Name {
		return stew.Print(t)
	}

	n := 0
	cur := t

	for {
		app, ok := cur.(*stew.Application)
		if !ok {
			return stew.Print(t)
		}

		switch app.Callable {
		case stew.Callable(d.Nat.Zero):
			return strconv.Itoa(n)
		case stew.Callable(d.Nat.Suc):
			n++
			cur = app.Arg(0)
		default:
			return stew.Print(t)
		}
	}
}
