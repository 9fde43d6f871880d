package stew

// AttributeDescriptor is a (name, domain sort, default term or absent)
// triple (§3). An attributed sort is structurally a labelled record over
// its attributes.
type AttributeDescriptor struct {
	Name    string
	Domain  *Sort
	Default Term // nil when no default was declared
}

// Sort is a named kind of term (§3). Sorts are created at
// specification-load time by the Registry and are immutable thereafter,
// except for the two-phase self-reference resolution performed while a
// sort's own declaration is still being materialised (see
// Registry.DefineSort and DESIGN.md's "self-referential
// signatures" note).
type Sort struct {
	Name       string
	Attributes []AttributeDescriptor
	Generators []*Generator
	Operations []*Operation

	// AbstractParams names this sort's abstract sort parameters (§4.6). An
	// entry maps to its own abstract marker sort (IsAbstractParameter()
	// true) until Specialize replaces the entry with a concrete sort.
	AbstractParams map[string]*Sort

	// TrueValue is the designated "truth" constant of this sort, used by the
	// rule evaluator to check a guard's normal form (§4.4c). A sort with no
	// TrueValue cannot be used as a guard's codomain; an operation
	// declaring a guard over such a sort is rejected at specification-load
	// time (§9's resolution of the stray-boolean-guard bug).
	TrueValue Term

	// specializedFrom is non-nil when this Sort was produced by Specialize;
	// it names the (possibly itself specialized) sort this one derives
	// from, and concreteParam/concreteSort record which abstract parameter
	// was bound to which concrete sort in this derivation step.
	specializedFrom *Sort
	concreteParam   string
	concreteSort    *Sort

	// abstractMarker, implementsConstraint and defaultConcrete back
	// NewAbstractSort/Specialize (§4.6): a marker sort has abstractMarker
	// set, an optional implementsConstraint concrete sorts must satisfy to
	// be bound, and an optional defaultConcrete used by callers that accept
	// an un-specialized default.
	abstractMarker       bool
	implementsConstraint *Sort
	defaultConcrete      *Sort
}

// NewSort allocates an empty, unfinalised sort skeleton under the given
// name. Per the "self-referential signatures" design note, the skeleton has
// a stable identity (pointer) before its attributes/generators/operations
// are known, so that declarations which reference the sort being declared
// can be resolved once its full declaration is available (see
// Registry.DefineSort).
func NewSort(name string) *Sort {
	return &Sort{Name: name}
}

// IsAbstract reports whether this sort declares at least one unbound
// abstract sort parameter.
func (s *Sort) IsAbstract() bool {
	for _, param := range s.AbstractParams {
		if param.IsAbstractParameter() {
			return true
		}
	}

	return false
}

// DefaultConcreteSort returns the default concrete sort declared for this
// abstract sort parameter marker, if any (§4.6).
func (s *Sort) DefaultConcreteSort() (*Sort, bool) {
	return s.defaultConcrete, s.defaultConcrete != nil
}

// IsSubtype decides subtyping between sorts (§4.6): a sort is always a
// subtype of itself, and a specialization U' of U is a subtype of U (and,
// transitively, of whatever U is itself a subtype of). Two specializations
// of the same sort with distinct concrete sorts are incomparable, as are
// any two otherwise-unrelated sorts.
func IsSubtype(sub, super *Sort) bool {
	if sub == nil || super == nil {
		return sub == super
	}

	for s := sub; s != nil; s = s.specializedFrom {
		if s == super {
			return true
		}
	}

	return false
}
