// Package naturals is a demo sort library (spec.md §1's "test fixtures and
// example uses, not part of the core"): a Peano Nat sort with zero/suc
// generators and add/sub/mul operations defined by structural induction on
// the successor generator, the way stew's own naturals example specifies
// them.
package naturals

import "github.com/kyouko-taiga/go-stew/pkg/stew"

// Sorts bundles the Nat sort's descriptors.
type Sorts struct {
	Sort *stew.Sort
	Zero *stew.Generator
	Suc  *stew.Generator
	Add  *stew.Operation
	Sub  *stew.Operation
	Mul  *stew.Operation
}

// Define registers the Nat sort, its generators, and its operations'
// rewrite rules against reg.
func Define(reg *stew.Registry) (*Sorts, error) {
	var s *Sorts

	sort, err := reg.DefineSort("Nat", func(self *stew.Sort) stew.SortBody {
		zero := stew.NewGenerator("Nat.zero", self)
		suc := stew.NewGenerator("Nat.suc", self, stew.Parameter{Name: "pred", Sort: self})

		add := stew.NewOperation("Nat.add", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})
		sub := stew.NewOperation("Nat.sub", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})
		mul := stew.NewOperation("Nat.mul", self,
			stew.Parameter{Name: "x", Sort: self}, stew.Parameter{Name: "y", Sort: self})

		s = &Sorts{Sort: self, Zero: zero, Suc: suc, Add: add, Sub: sub, Mul: mul}

		return stew.SortBody{
			Generators: []*stew.Generator{zero, suc},
			Operations: []*stew.Operation{add, sub, mul},
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
	zero, err := s.Zero.New()
	if err != nil {
		return err
	}

	varX := stew.NewVariable("x", s.Sort)
	varY := stew.NewVariable("y", s.Sort)
	varN := stew.NewVariable("n", s.Sort)
	varM := stew.NewVariable("m", s.Sort)

	sucOfN, err := s.Suc.New(varN)
	if err != nil {
		return err
	}

	sucOfM, err := s.Suc.New(varM)
	if err != nil {
		return err
	}

	// add(zero, y) = y
	if err := s.Add.AddRule([]stew.MatchClause{{Param: "x", Pattern: zero}}, nil, varY); err != nil {
		return err
	}

	// add(suc(n), y) = suc(add(n, y))
	addNY, err := stew.NewApplicationNamed(s.Add, map[string]stew.Term{"x": varN, "y": varY})
	if err != nil {
		return err
	}

	sucAddNY, err := s.Suc.New(addNY)
	if err != nil {
		return err
	}

	if err := s.Add.AddRule([]stew.MatchClause{{Param: "x", Pattern: sucOfN}}, nil, sucAddNY); err != nil {
		return err
	}

	// sub(x, zero) = x
	if err := s.Sub.AddRule([]stew.MatchClause{{Param: "y", Pattern: zero}}, nil, varX); err != nil {
		return err
	}

	// sub(suc(n), suc(m)) = sub(n, m)
	subNM, err := stew.NewApplicationNamed(s.Sub, map[string]stew.Term{"x": varN, "y": varM})
	if err != nil {
		return err
	}

	if err := s.Sub.AddRule(
		[]stew.MatchClause{{Param: "x", Pattern: sucOfN}, {Param: "y", Pattern: sucOfM}}, nil, subNM,
	); err != nil {
		return err
	}

	// mul(zero, y) = zero
	if err := s.Mul.AddRule([]stew.MatchClause{{Param: "x", Pattern: zero}}, nil, zero); err != nil {
		return err
	}

	// mul(suc(n), y) = add(mul(n, y), y)
	mulNY, err := stew.NewApplicationNamed(s.Mul, map[string]stew.Term{"x": varN, "y": varY})
	if err != nil {
		return err
	}

	addMulNYY, err := stew.NewApplicationNamed(s.Add, map[string]stew.Term{"x": mulNY, "y": varY})
	if err != nil {
		return err
	}

	if err := s.Mul.AddRule([]stew.MatchClause{{Param: "x", Pattern: sucOfN}}, nil, addMulNYY); err != nil {
		return err
	}

	return nil
}

// Of converts a non-negative int into the corresponding ground Nat term,
// zero wrapped in n nested applications of suc. A convenience for building
// CLI and test arguments; not itself part of the rewriting engine.
func (s *Sorts) Of(n int) (stew.Term, error) {
	t, err := s.Zero.New()
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		t, err = s.Suc.New(t)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}
