// Package eval implements the rule evaluator of SPEC_FULL.md §4.4: given an
// operation application, it tries each rewrite rule of the operation in
// declaration order and, on the first successful application, returns the
// rewritten term, recursing to drive every subterm to normal form.
package eval

import (
	"github.com/sirupsen/logrus"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
	"github.com/kyouko-taiga/go-stew/pkg/stew/match"
)

// Evaluator drives operation calls to normal form. It is re-entrant
// (operations may call other operations, which recursively enter the
// evaluator) and holds no mutable state of its own beyond an optional trace
// sink, so the zero value (with a nil log) is usable directly (§5).
type Evaluator struct {
	log logrus.FieldLogger
}

// New constructs an Evaluator. A nil logger disables rule tracing.
func New(log logrus.FieldLogger) *Evaluator {
	return &Evaluator{log: log}
}

// Evaluate reduces an operation application op(args...) to normal form
// (§4.4): each argument is normalised first (call-by-value), then the
// operation's rules are tried in declaration order. Evaluate fails with
// *stew.RewritingError if no rule's matches and guards both succeed.
func (e *Evaluator) Evaluate(op *stew.Operation, args []stew.Term) (stew.Term, error) {
	normArgs := make([]stew.Term, len(args))

	for i, a := range args {
		n, err := e.Normalize(a)
		if err != nil {
			return nil, err
		}

		normArgs[i] = n
	}

	named := make(map[string]stew.Term, len(normArgs))
	for i, a := range normArgs {
		named[op.ParameterName(uint(i))] = a
	}

	return e.applyRules(op, named)
}

// Normalize drives an arbitrary term to normal form: subterms are
// normalised bottom-up, and any pending operation Application encountered
// (an unreduced call, per the Open Question resolved in SPEC_FULL.md §3) is
// reduced by applying its operation's rules to the normalised arguments.
// Generator applications and attribute records are
// already in normal form once their subterms are; variables are returned
// unchanged (they only appear inside still-open templates, never as
// genuine evaluator input).
func (e *Evaluator) Normalize(t stew.Term) (stew.Term, error) {
	switch v := t.(type) {
	case *stew.Application:
		args := make(map[string]stew.Term, len(v.Args))

		for name, arg := range v.Args {
			n, err := e.Normalize(arg)
			if err != nil {
				return nil, err
			}

			args[name] = n
		}

		rebuilt := &stew.Application{Callable: v.Callable, Args: args}

		if !rebuilt.IsPending() {
			return rebuilt, nil
		}

		op := rebuilt.Callable.(*stew.Operation)
		ordered := make([]stew.Term, op.Arity())

		for i := range ordered {
			ordered[i] = rebuilt.Arg(uint(i))
		}

		return e.applyRules(op, namedOf(op, ordered))
	case *stew.AttributeRecord:
		values := make(map[string]stew.Term, len(v.Values))

		for name, val := range v.Values {
			n, err := e.Normalize(val)
			if err != nil {
				return nil, err
			}

			values[name] = n
		}

		return &stew.AttributeRecord{Sort: v.Sort, Values: values}, nil
	default:
		return t, nil
	}
}

func namedOf(op *stew.Operation, ordered []stew.Term) map[string]stew.Term {
	named := make(map[string]stew.Term, len(ordered))
	for i, a := range ordered {
		named[op.ParameterName(uint(i))] = a
	}

	return named
}

// applyRules implements §4.4 steps 2-3 over an operation whose arguments
// are already normalised and named by parameter.
func (e *Evaluator) applyRules(op *stew.Operation, named map[string]stew.Term) (stew.Term, error) {
	for i, rule := range op.Rules {
		b := stew.Seeded(named)

		if !e.tryMatches(rule, named, b) {
			e.trace(op, i, "matches failed")
			continue
		}

		ok, err := e.tryGuards(rule, b)
		if err != nil {
			return nil, err
		}

		if !ok {
			e.trace(op, i, "guards failed")
			continue
		}

		rhs, err := stew.Instantiate(rule.RHS, b)
		if err != nil {
			if isInternalMatchError(err) {
				// §7: internal matcher errors are caught by the evaluator
				// and converted to "this rule did not apply".
				e.trace(op, i, "unbound variable in right-hand side")
				continue
			}

			return nil, err
		}

		result, err := e.Normalize(rhs)
		if err != nil {
			// §7: a failure in a subterm's normalisation fails the
			// enclosing rule (and, by propagation, the whole call).
			return nil, err
		}

		e.trace(op, i, "applied")

		return result, nil
	}

	return nil, stew.NewRewritingError(op.Name)
}

func (e *Evaluator) tryMatches(rule stew.Rule, named map[string]stew.Term, b stew.Binding) bool {
	pairs := make([]match.Pair, len(rule.Matches))
	for i, m := range rule.Matches {
		pairs[i] = match.Pair{Subject: named[m.Param], Pattern: m.Pattern}
	}

	return match.MultiMatch(pairs, b)
}

func (e *Evaluator) tryGuards(rule stew.Rule, b stew.Binding) (bool, error) {
	for _, g := range rule.Guards {
		inst, err := stew.Instantiate(g, b)
		if err != nil {
			if isInternalMatchError(err) {
				return false, nil
			}

			return false, err
		}

		val, err := e.Normalize(inst)
		if err != nil {
			return false, err
		}

		truth := stew.SortOf(g).TrueValue
		if truth == nil || !val.Equals(truth) {
			return false, nil
		}
	}

	return true, nil
}

func isInternalMatchError(err error) bool {
	_, ok := err.(*stew.InstantiationError)
	return ok
}

func (e *Evaluator) trace(op *stew.Operation, rule int, msg string) {
	if e.log == nil {
		return
	}

	e.log.WithFields(logrus.Fields{"operation": op.Name, "rule": rule}).Debug(msg)
}
