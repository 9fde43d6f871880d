package translate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
	"github.com/kyouko-taiga/go-stew/pkg/stew/translate"
)

func TestOperationRendersUnguardedRule(t *testing.T) {
	reg := stew.NewRegistry(nil)

	var zero, suc *stew.Generator

	var add *stew.Operation

	_, err := reg.DefineSort("Nat", func(self *stew.Sort) stew.SortBody {
		zero = stew.NewGenerator("Nat.zero", self)
		suc = stew.NewGenerator("Nat.suc", self, stew.Parameter{Name: "pred", Sort: self})
		add = stew.NewOperation("Nat.add", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})

		return stew.SortBody{Generators: []*stew.Generator{zero, suc}, Operations: []*stew.Operation{add}}
	})
	require.NoError(t, err)

	zeroTerm, err := zero.New()
	require.NoError(t, err)

	varY := stew.NewVariable("y", add.ParameterSort(1))

	require.NoError(t, add.AddRule([]stew.MatchClause{{Param: "x", Pattern: zeroTerm}}, nil, varY))

	text, err := translate.Operation(add)
	require.NoError(t, err)

	assert.Equal(t, "Nat.add(Nat.zero, $y) = $y\n", text)
}

// TestNonLinearRuleLinearizesViaAuxiliaryCopy exercises testable property
// 10: a repeated right-hand-side variable is linearized via a generated
// `copy` declaration.
func TestNonLinearRuleLinearizesViaAuxiliaryCopy(t *testing.T) {
	reg := stew.NewRegistry(nil)

	var suc *stew.Generator

	var double *stew.Operation

	_, err := reg.DefineSort("Nat", func(self *stew.Sort) stew.SortBody {
		zero := stew.NewGenerator("Nat.zero", self)
		suc = stew.NewGenerator("Nat.suc", self, stew.Parameter{Name: "pred", Sort: self})
		double = stew.NewOperation("Nat.double", self, stew.Parameter{Name: "x", Sort: self})

		return stew.SortBody{Generators: []*stew.Generator{zero, suc}, Operations: []*stew.Operation{double}}
	})
	require.NoError(t, err)

	x := stew.NewVariable("x", double.ParameterSort(0))

	pair, err := stew.NewApplicationNamed(
		stew.NewGenerator("Pair.mk", double.Codomain(), stew.Parameter{Name: "l", Sort: double.Codomain()}, stew.Parameter{Name: "r", Sort: double.Codomain()}),
		map[string]stew.Term{"l": x, "r": x},
	)
	require.NoError(t, err)

	require.NoError(t, double.AddRule(nil, nil, pair))

	text, err := translate.Operation(double)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "copy($x) = ($x, $x$2)", lines[0])
	assert.Contains(t, lines[1], "$x$2")
}

func TestRegistryRendersEveryOperation(t *testing.T) {
	reg := stew.NewRegistry(nil)

	var zero *stew.Generator

	var op *stew.Operation

	_, err := reg.DefineSort("Nat", func(self *stew.Sort) stew.SortBody {
		zero = stew.NewGenerator("Nat.zero", self)
		op = stew.NewOperation("Nat.id", self, stew.Parameter{Name: "x", Sort: self})

		return stew.SortBody{Generators: []*stew.Generator{zero}, Operations: []*stew.Operation{op}}
	})
	require.NoError(t, err)

	x := stew.NewVariable("x", op.ParameterSort(0))
	require.NoError(t, op.AddRule(nil, nil, x))

	text, err := translate.Registry(reg)
	require.NoError(t, err)

	assert.Equal(t, "Nat.id($x) = $x\n", text)

	_ = zero
}
