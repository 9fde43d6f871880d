package stew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
)

func natSort(t *testing.T, reg *stew.Registry) (*stew.Sort, *stew.Generator, *stew.Generator) {
	t.Helper()

	var zero, suc *stew.Generator

	sort, err := reg.DefineSort("Nat", func(self *stew.Sort) stew.SortBody {
		zero = stew.NewGenerator("Nat.zero", self)
		suc = stew.NewGenerator("Nat.suc", self, stew.Parameter{Name: "pred", Sort: self})

		return stew.SortBody{Generators: []*stew.Generator{zero, suc}}
	})
	require.NoError(t, err)

	return sort, zero, suc
}

func TestApplicationArityMismatch(t *testing.T) {
	_, zero, _ := natSort(t, stew.NewRegistry(nil))

	_, err := zero.New(zero.Codomain().TrueValue)

	var argErr *stew.ArgumentError

	require.Error(t, err)
	assert.ErrorAs(t, err, &argErr)
}

func TestApplicationEqualsIsPointwiseOverGenerator(t *testing.T) {
	_, zero, suc := natSort(t, stew.NewRegistry(nil))

	zeroTerm, err := zero.New()
	require.NoError(t, err)

	one, err := suc.New(zeroTerm)
	require.NoError(t, err)

	oneAgain, err := suc.New(zeroTerm)
	require.NoError(t, err)

	two, err := suc.New(one)
	require.NoError(t, err)

	assert.True(t, one.Equals(oneAgain))
	assert.False(t, one.Equals(two))
	assert.True(t, zeroTerm.IsConstant())
	assert.True(t, one.IsConstant())
}

func TestApplicationPrettyPrinting(t *testing.T) {
	_, zero, suc := natSort(t, stew.NewRegistry(nil))

	zeroTerm, err := zero.New()
	require.NoError(t, err)

	one, err := suc.New(zeroTerm)
	require.NoError(t, err)

	assert.Equal(t, "Nat.zero", stew.Print(zeroTerm))
	assert.Equal(t, "Nat.suc(Nat.zero)", stew.Print(one))
}

func TestAttributeRecordDefaultsAndEquality(t *testing.T) {
	reg := stew.NewRegistry(nil)
	natSortDesc, zeroGen, _ := natSort(t, reg)

	zeroTerm, err := zeroGen.New()
	require.NoError(t, err)

	sort, err := reg.DefineSort("Point", func(self *stew.Sort) stew.SortBody {
		return stew.SortBody{
			Attributes: []stew.AttributeDescriptor{{Name: "x", Domain: natSortDesc, Default: zeroTerm}},
		}
	})
	require.NoError(t, err)

	r1, err := stew.NewAttributeRecord(sort, map[string]stew.Term{})
	require.NoError(t, err)

	r2, err := stew.NewAttributeRecord(sort, map[string]stew.Term{"x": zeroTerm})
	require.NoError(t, err)

	assert.True(t, r1.Equals(r2))
}

func TestAttributeRecordMissingRequiredAttribute(t *testing.T) {
	reg := stew.NewRegistry(nil)
	natSortDesc, _, _ := natSort(t, reg)

	sort, err := reg.DefineSort("Labelled", func(self *stew.Sort) stew.SortBody {
		return stew.SortBody{
			Attributes: []stew.AttributeDescriptor{{Name: "label", Domain: natSortDesc}},
		}
	})
	require.NoError(t, err)

	_, err = stew.NewAttributeRecord(sort, map[string]stew.Term{})

	var argErr *stew.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}
