package stew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
)

// TestSpecializationSubtyping exercises spec.md §8 scenario 6: with
// abstract A in U and concretizations U1 = U[A=S], U2 = U[A=T], U1 is a
// subtype of U, but U1 and U2 are mutually not subtypes.
func TestSpecializationSubtyping(t *testing.T) {
	reg := stew.NewRegistry(nil)

	abstractElem := stew.NewAbstractSort("Elem", nil, nil)

	u, err := reg.DefineSort("Box", func(self *stew.Sort) stew.SortBody {
		of := stew.NewGenerator("Box.of", self, stew.Parameter{Name: "value", Sort: abstractElem})

		return stew.SortBody{
			Generators:     []*stew.Generator{of},
			AbstractParams: map[string]*stew.Sort{"Elem": abstractElem},
		}
	})
	require.NoError(t, err)

	assert.True(t, u.IsAbstract())

	s, err := reg.DefineSort("S", func(self *stew.Sort) stew.SortBody { return stew.SortBody{} })
	require.NoError(t, err)

	tSort, err := reg.DefineSort("T", func(self *stew.Sort) stew.SortBody { return stew.SortBody{} })
	require.NoError(t, err)

	u1, err := stew.Specialize(u, "Elem", s)
	require.NoError(t, err)

	u2, err := stew.Specialize(u, "Elem", tSort)
	require.NoError(t, err)

	assert.True(t, stew.IsSubtype(u1, u))
	assert.True(t, stew.IsSubtype(u2, u))
	assert.False(t, stew.IsSubtype(u1, u2))
	assert.False(t, stew.IsSubtype(u2, u1))
	assert.False(t, u1.IsAbstract())

	of1, ok := reg.LookupGenerator("Box.of")
	require.True(t, ok)
	assert.Same(t, abstractElem, of1.ParameterSort(0))

	assert.Same(t, s, u1.Generators[0].ParameterSort(0))
}

func TestSpecializeRejectsUnknownParameter(t *testing.T) {
	reg := stew.NewRegistry(nil)

	u, err := reg.DefineSort("Box", func(self *stew.Sort) stew.SortBody { return stew.SortBody{} })
	require.NoError(t, err)

	concrete, err := reg.DefineSort("S", func(self *stew.Sort) stew.SortBody { return stew.SortBody{} })
	require.NoError(t, err)

	_, err = stew.Specialize(u, "Elem", concrete)

	var argErr *stew.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestSpecializeEnforcesImplementsConstraint(t *testing.T) {
	reg := stew.NewRegistry(nil)

	iface, err := reg.DefineSort("Iface", func(self *stew.Sort) stew.SortBody { return stew.SortBody{} })
	require.NoError(t, err)

	abstractElem := stew.NewAbstractSort("Elem", iface, nil)

	u, err := reg.DefineSort("Box", func(self *stew.Sort) stew.SortBody {
		return stew.SortBody{AbstractParams: map[string]*stew.Sort{"Elem": abstractElem}}
	})
	require.NoError(t, err)

	unrelated, err := reg.DefineSort("Unrelated", func(self *stew.Sort) stew.SortBody { return stew.SortBody{} })
	require.NoError(t, err)

	_, err = stew.Specialize(u, "Elem", unrelated)

	var argErr *stew.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}
