package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
	"github.com/kyouko-taiga/go-stew/pkg/stew/strategy"
	"github.com/kyouko-taiga/go-stew/pkg/util/collection/hash"
)

func natTerms(t *testing.T) (zero, one, two stew.Term) {
	t.Helper()

	reg := stew.NewRegistry(nil)

	var zeroGen, sucGen *stew.Generator

	_, err := reg.DefineSort("Nat", func(self *stew.Sort) stew.SortBody {
		zeroGen = stew.NewGenerator("Nat.zero", self)
		sucGen = stew.NewGenerator("Nat.suc", self, stew.Parameter{Name: "pred", Sort: self})

		return stew.SortBody{Generators: []*stew.Generator{zeroGen, sucGen}}
	})
	require.NoError(t, err)

	zero, err = zeroGen.New()
	require.NoError(t, err)

	one, err = sucGen.New(zero)
	require.NoError(t, err)

	two, err = sucGen.New(one)
	require.NoError(t, err)

	return zero, one, two
}

func TestIdentityReturnsInputUnchanged(t *testing.T) {
	zero, one, _ := natTerms(t)

	set := strategy.Of(zero, one)

	result := strategy.Identity(set)

	assert.Equal(t, set.Size(), result.Size())
	assert.True(t, result.Contains(zero))
	assert.True(t, result.Contains(one))
}

func TestUnionRequiresAtLeastTwoStrategies(t *testing.T) {
	_, err := strategy.Union(strategy.Identity)

	var argErr *stew.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestUnionIsSetUnionOfEachStrategy(t *testing.T) {
	zero, one, two := natTerms(t)

	var onlyZero strategy.Strategy = func(terms *hash.Set[stew.Term]) *hash.Set[stew.Term] { return strategy.Of(zero) }
	var onlyTwo strategy.Strategy = func(terms *hash.Set[stew.Term]) *hash.Set[stew.Term] { return strategy.Of(two) }

	u, err := strategy.Union(onlyZero, onlyTwo)
	require.NoError(t, err)

	result := u(strategy.Of(one))

	assert.Equal(t, uint(2), result.Size())
	assert.True(t, result.Contains(zero))
	assert.True(t, result.Contains(two))
	assert.False(t, result.Contains(one))
}

func TestFixpointIteratesUntilSetStabilizes(t *testing.T) {
	zero, one, two := natTerms(t)

	// A strategy that adds the "next" term from a small fixed chain until
	// the full chain is present, then stops changing the set.
	chain := []stew.Term{zero, one, two}

	grow := func(terms *hash.Set[stew.Term]) *hash.Set[stew.Term] {
		out := strategy.Of()

		for _, t := range terms.Entries() {
			out.Insert(t)
		}

		for i, t := range chain {
			if i == 0 {
				continue
			}

			if out.Contains(chain[i-1]) {
				out.Insert(t)
			}
		}

		return out
	}

	result := strategy.Fixpoint(grow)(strategy.Of(zero))

	assert.Equal(t, uint(3), result.Size())
	for _, term := range chain {
		assert.True(t, result.Contains(term))
	}
}
