// Package strategy implements the strategy primitives of SPEC_FULL.md §4.5:
// identity, n-ary union, and fixpoint combinators lifted over sets of terms.
// Term sets are backed by pkg/util/collection/hash.Set, which stew.Term
// satisfies directly since its Equals/Hash methods already match the
// hash.Hasher[Term] shape.
package strategy

import (
	"github.com/kyouko-taiga/go-stew/pkg/stew"
	"github.com/kyouko-taiga/go-stew/pkg/util/collection/hash"
)

// Strategy maps a set of terms to a set of terms (§4.5).
type Strategy func(*hash.Set[stew.Term]) *hash.Set[stew.Term]

// Of builds a term set from one or more terms; a single term stands for a
// singleton set, per §4.5's "when a single term is supplied in place of a
// set" rule.
func Of(terms ...stew.Term) *hash.Set[stew.Term] {
	set := hash.NewSet[stew.Term](uint(len(terms)))
	for _, t := range terms {
		set.Insert(t)
	}

	return set
}

// Identity is the strategy that returns its input set unchanged.
func Identity(terms *hash.Set[stew.Term]) *hash.Set[stew.Term] {
	return terms
}

// Union builds the strategy s1(T) ∪ … ∪ sk(T); it requires at least two
// strategies (§4.5).
func Union(strategies ...Strategy) (Strategy, error) {
	if len(strategies) < 2 {
		return nil, stew.NewArgumentError("union requires at least 2 strategies, got %d", len(strategies))
	}

	return func(terms *hash.Set[stew.Term]) *hash.Set[stew.Term] {
		result := hash.NewSet[stew.Term](terms.Size())

		for _, s := range strategies {
			for _, t := range s(terms).Entries() {
				result.Insert(t)
			}
		}

		return result
	}, nil
}

// Fixpoint builds the strategy that iterates T ← s(T) until T stabilizes
// under set equality, returning the fixed point. Termination is the
// caller's responsibility (§4.5); Fixpoint does not itself bound the number
// of iterations.
func Fixpoint(s Strategy) Strategy {
	return func(terms *hash.Set[stew.Term]) *hash.Set[stew.Term] {
		current := terms

		for {
			next := s(current)
			if setsEqual(current, next) {
				return next
			}

			current = next
		}
	}
}

func setsEqual(a, b *hash.Set[stew.Term]) bool {
	if a.Size() != b.Size() {
		return false
	}

	for _, t := range a.Entries() {
		if !b.Contains(t) {
			return false
		}
	}

	return true
}
