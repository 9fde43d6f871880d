package stew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
)

// TestAddRuleRejectsGuardOverSortWithNoTrueValue exercises spec.md §8
// scenario 9: a guard over a sort with no declared truth constant is
// rejected at specification-load time with an ArgumentError, rather than
// being silently accepted and misinterpreted at evaluation time.
func TestAddRuleRejectsGuardOverSortWithNoTrueValue(t *testing.T) {
	reg := stew.NewRegistry(nil)

	sort, _, suc := natSort(t, reg)

	var f *stew.Operation

	_, err := reg.DefineSort("Other", func(self *stew.Sort) stew.SortBody {
		f = stew.NewOperation("Other.f", self, stew.Parameter{Name: "x", Sort: sort})
		return stew.SortBody{Operations: []*stew.Operation{f}}
	})
	require.NoError(t, err)

	x := stew.NewVariable("x", sort)

	// Other has no TrueValue, so using suc(x) (of sort Nat, which also has no
	// TrueValue) as a guard must be rejected rather than silently accepted.
	guard, err := suc.New(x)
	require.NoError(t, err)

	err = f.AddRule(nil, []stew.Term{guard}, x)

	var argErr *stew.ArgumentError
	require.Error(t, err)
	assert.ErrorAs(t, err, &argErr)
}
