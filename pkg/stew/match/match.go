// Package match implements the syntactic matcher of SPEC_FULL.md §4.3: given
// a ground subject term and a pattern term, it decides whether the subject
// is an instance of the pattern and, if so, extends a binding accordingly.
package match

import (
	"github.com/kyouko-taiga/go-stew/pkg/stew"
)

// Match decides whether subject is an instance of pattern, extending b
// in place on success. On failure, b is left exactly as it was at entry —
// matching is transactional within one invocation (§4.3).
//
// Match soundness (§8): if Match(subject, pattern, binding) returns true,
// substituting the resulting binding into pattern yields a term equal to
// subject. This holds by construction: every binding entry is either a
// direct assignment of subject (or a subterm of it) to a pattern variable,
// or a previously-bound value re-checked for equality against the current
// subterm.
func Match(subject, pattern stew.Term, b stew.Binding) bool {
	snapshot := b.Clone()

	if match(subject, pattern, b) {
		return true
	}

	restore(b, snapshot)

	return false
}

// MultiMatch matches a sequence of (subject, pattern) pairs against the
// same, growing binding: it succeeds iff every pair matches, and is
// transactional as a whole — a failure partway through restores b to its
// state at entry rather than leaving partial bindings from earlier pairs.
func MultiMatch(pairs []Pair, b stew.Binding) bool {
	snapshot := b.Clone()

	for _, p := range pairs {
		if !match(p.Subject, p.Pattern, b) {
			restore(b, snapshot)
			return false
		}
	}

	return true
}

// Pair is one (subject, pattern) entry of a MultiMatch call.
type Pair struct {
	Subject stew.Term
	Pattern stew.Term
}

func restore(b stew.Binding, snapshot stew.Binding) {
	for k := range b {
		delete(b, k)
	}

	for k, v := range snapshot {
		b[k] = v
	}
}

// match is the unguarded recursive matcher; callers are responsible for the
// transactional snapshot/restore around it.
func match(subject, pattern stew.Term, b stew.Binding) bool {
	if v, ok := pattern.(*stew.Variable); ok {
		return matchVariable(subject, v, b)
	}

	if _, ok := subject.(*stew.Variable); ok {
		// Rule 2 of §4.3: variables are forbidden on the subject side.
		return false
	}

	switch p := pattern.(type) {
	case *stew.Application:
		s, ok := subject.(*stew.Application)
		if !ok {
			return false
		}

		return matchApplication(s, p, b)
	case *stew.AttributeRecord:
		s, ok := subject.(*stew.AttributeRecord)
		if !ok {
			return false
		}

		return matchRecord(s, p, b)
	default:
		return false
	}
}

func matchVariable(subject stew.Term, pattern *stew.Variable, b stew.Binding) bool {
	domain := stew.SortOf(subject)
	if !stew.IsSubtype(domain, pattern.Domain) {
		return false
	}

	if bound, ok := b.Lookup(pattern.Name); ok {
		// Consistent binding (§8): a second occurrence of the same variable
		// must match an equal subterm.
		return subject.Equals(bound)
	}

	b.Bind(pattern.Name, subject)

	return true
}

func matchApplication(subject, pattern *stew.Application, b stew.Binding) bool {
	if subject.Callable != pattern.Callable {
		return false
	}

	for i := uint(0); i < pattern.Callable.Arity(); i++ {
		name := pattern.Callable.ParameterName(i)
		if !match(subject.Args[name], pattern.Args[name], b) {
			return false
		}
	}

	return true
}

func matchRecord(subject, pattern *stew.AttributeRecord, b stew.Binding) bool {
	if !stew.IsSubtype(subject.Sort, pattern.Sort) {
		return false
	}

	for _, attr := range pattern.Sort.Attributes {
		sv, ok := subject.Values[attr.Name]
		if !ok {
			return false
		}

		if !match(sv, pattern.Values[attr.Name], b) {
			return false
		}
	}

	return true
}
