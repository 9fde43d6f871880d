// Package booleans is a demo sort library (spec.md §1's "test fixtures and
// example uses, not part of the core"): a two-valued Bool sort with
// true/false generators and invert/and/or/xor operations, defined the way a
// stew specification author would define any sort — by calling
// Registry.DefineSort and then adding rules to the returned operations.
package booleans

import "github.com/kyouko-taiga/go-stew/pkg/stew"

// Sorts bundles the Bool sort's descriptors for callers that want direct
// access to its generators and operations (e.g. to build argument terms).
type Sorts struct {
	Sort   *stew.Sort
	True   *stew.Generator
	False  *stew.Generator
	Invert *stew.Operation
	And    *stew.Operation
	Or     *stew.Operation
	Xor    *stew.Operation
}

// Define registers the Bool sort, its generators, and its operations'
// rewrite rules against reg.
func Define(reg *stew.Registry) (*Sorts, error) {
	var s *Sorts

	sort, err := reg.DefineSort("Bool", func(self *stew.Sort) stew.SortBody {
		trueGen := stew.NewGenerator("Bool.true", self)
		falseGen := stew.NewGenerator("Bool.false", self)

		invert := stew.NewOperation("Bool.invert", self, stew.Parameter{Name: "x", Sort: self})
		and := stew.NewOperation("Bool.and", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})
		or := stew.NewOperation("Bool.or", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})
		xor := stew.NewOperation("Bool.xor", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})

		s = &Sorts{Sort: self, True: trueGen, False: falseGen, Invert: invert, And: and, Or: or, Xor: xor}

		trueTerm, _ := trueGen.New()

		return stew.SortBody{
			Generators: []*stew.Generator{trueGen, falseGen},
			Operations: []*stew.Operation{invert, and, or, xor},
			TrueValue:  trueTerm,
		}
	})
	if err != nil {
		return nil, err
	}

	s.Sort = sort

	if err := defineRules(s); err != nil {
		return nil, err
	}

	return s, nil
}

func defineRules(s *Sorts) error {
	t, err := s.True.New()
	if err != nil {
		return err
	}

	f, err := s.False.New()
	if err != nil {
		return err
	}

	if err := s.Invert.AddRule([]stew.MatchClause{{Param: "x", Pattern: t}}, nil, f); err != nil {
		return err
	}

	if err := s.Invert.AddRule([]stew.MatchClause{{Param: "x", Pattern: f}}, nil, t); err != nil {
		return err
	}

	combos := []struct {
		x, y       stew.Term
		and, or    stew.Term
		xorResult  stew.Term
	}{
		{t, t, t, t, f},
		{t, f, f, t, t},
		{f, t, f, t, t},
		{f, f, f, f, f},
	}

	for _, c := range combos {
		matches := []stew.MatchClause{{Param: "x", Pattern: c.x}, {Param: "y", Pattern: c.y}}

		if err := s.And.AddRule(matches, nil, c.and); err != nil {
			return err
		}

		if err := s.Or.AddRule(matches, nil, c.or); err != nil {
			return err
		}

		if err := s.Xor.AddRule(matches, nil, c.xorResult); err != nil {
			return err
		}
	}

	return nil
}
