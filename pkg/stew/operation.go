package stew

// MatchClause pairs one of an operation's parameters with the pattern its
// (normalised) argument must match (§3, §6).
type MatchClause struct {
	Param   string
	Pattern Term
}

// Rule is an ordered `(guards, match patterns, right-hand-side template)`
// collection (§3). Guards are boolean-valued term templates required to
// normalise to the sort-specific truth constant; match patterns are
// per-parameter pattern terms matched against the corresponding argument;
// the template is a term over rule-local variables bound by guards/matches
// and the operation's own parameter names.
type Rule struct {
	Matches []MatchClause
	Guards  []Term
	RHS     Term
}

// Operation is the same shape as a Generator plus an ordered list of
// rewrite rules (§3). Operations are defined: the meaning of an operation
// term is the normal form reached by the evaluator. Application.Equals
// compares pending operation applications structurally, so two calls with
// equal normal forms compare equal only once both have been evaluated.
type Operation struct {
	Name       string // qualified, e.g. "Nat.add"
	Parameters []Parameter
	Codomain_  *Sort
	Rules      []Rule
}

var _ Callable = (*Operation)(nil)

// NewOperation constructs an operation descriptor with no rules yet. Use
// AddRule to append its ordered rewrite rules; rules are tried in the order
// they are added (§4.4's "Ordering and tie-breaking").
func NewOperation(name string, codomain *Sort, params ...Parameter) *Operation {
	return &Operation{Name: name, Parameters: params, Codomain_: codomain}
}

// QualifiedName implements Callable.
func (o *Operation) QualifiedName() string { return o.Name }

// Arity implements Callable.
func (o *Operation) Arity() uint { return uint(len(o.Parameters)) }

// ParameterName implements Callable.
func (o *Operation) ParameterName(i uint) string { return o.Parameters[i].Name }

// ParameterSort implements Callable.
func (o *Operation) ParameterSort(i uint) *Sort { return o.Parameters[i].Sort }

// Codomain implements Callable.
func (o *Operation) Codomain() *Sort { return o.Codomain_ }

// isOperation implements Callable.
func (o *Operation) isOperation() bool { return true }

// AddRule appends a rewrite rule to this operation, in declaration order.
// It rejects, at specification-load time, any guard whose codomain sort has
// no designated TrueValue — this is the load-time check which resolves
// spec.md §9's stray-boolean-guard bug ("(other, Nat.suc(var.y)) used as a
// boolean") by refusing to guess intent.
func (o *Operation) AddRule(matches []MatchClause, guards []Term, rhs Term) error {
	for _, m := range matches {
		if !o.hasParameter(m.Param) {
			return NewArgumentError("%s: rule matches unknown parameter `%s`", o.Name, m.Param)
		}
	}

	for _, g := range guards {
		domain := SortOf(g)
		if domain == nil || domain.TrueValue == nil {
			return NewArgumentError(
				"%s: guard of sort %s cannot be used as a boolean condition (no truth constant declared)",
				o.Name, guardSortName(domain))
		}
	}

	o.Rules = append(o.Rules, Rule{Matches: matches, Guards: guards, RHS: rhs})

	return nil
}

func guardSortName(s *Sort) string {
	if s == nil {
		return "<unknown>"
	}

	return s.Name
}

func (o *Operation) hasParameter(name string) bool {
	return o.HasParameter(name)
}

// HasParameter reports whether name is one of this operation's declared
// parameters; exported for use by the translate package when rendering a
// rule's match clauses.
func (o *Operation) HasParameter(name string) bool {
	for _, p := range o.Parameters {
		if p.Name == name {
			return true
		}
	}

	return false
}

// New builds a pending operation-application term over positional
// arguments. It is not a constant (IsConstant reports false) until the
// evaluator reduces it to normal form.
func (o *Operation) New(args ...Term) (*Application, error) {
	return NewApplication(o, args...)
}
