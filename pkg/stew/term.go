package stew

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Term is an immutable node of the term tree: a variable, an application of
// a Callable (generator or operation) to argument terms, or an attribute
// record.  Every transformation over a Term yields a fresh Term; existing
// Terms are never mutated.
//
// Term implements hash.Hasher[Term] (Equals/Hash) so that the term sets
// used by the strategy layer (pkg/stew/strategy) can be backed directly by
// pkg/util/collection/hash.Set without a bespoke set implementation.
type Term interface {
	// SortName returns the name of this term's sort, i.e. sort_of(term) in
	// the matcher's contract (§4.3).
	SortName() string
	// IsGround reports whether this term contains no variables.
	IsGround() bool
	// IsConstant reports whether this term is a constant (ground Application
	// over a Generator, or a ground AttributeRecord) per §3's definition of
	// variants G and A.
	IsConstant() bool
	// Equals decides structural equality, per §4.1's contract.
	Equals(other Term) bool
	// Hash returns a hash consistent with Equals.
	Hash() uint64
	// String renders this term using the engine's pretty-printer.
	String() string
}

// ============================================================================
// Variable
// ============================================================================

// Variable is term variant (V): a name paired with a domain sort.  Variables
// are forbidden on the subject side of a match (§4.3, rule 2); they appear
// only in patterns, guards, and right-hand-side templates.
type Variable struct {
	Name   string
	Domain *Sort
}

// NewVariable constructs a variable term with the given name and domain.
func NewVariable(name string, domain *Sort) *Variable {
	return &Variable{Name: name, Domain: domain}
}

// SortName implements Term.
func (v *Variable) SortName() string { return v.Domain.Name }

// IsGround implements Term. A variable is never ground.
func (v *Variable) IsGround() bool { return false }

// IsConstant implements Term. A variable is never a constant.
func (v *Variable) IsConstant() bool { return false }

// Equals implements Term: two variables are equal iff same name and domain.
func (v *Variable) Equals(other Term) bool {
	o, ok := other.(*Variable)
	return ok && v.Name == o.Name && v.Domain == o.Domain
}

// Hash implements Term.
func (v *Variable) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("var:"))
	h.Write([]byte(v.Domain.Name))
	h.Write([]byte(":"))
	h.Write([]byte(v.Name))

	return h.Sum64()
}

// String implements Term.
func (v *Variable) String() string {
	return "$" + v.Name
}

// ============================================================================
// Callable
// ============================================================================

// Callable is satisfied by both *Generator and *Operation: the shape shared
// by free constructors and defined operations (§3's Generator/Operation
// descriptors have the "same shape", differing only in whether they carry
// rewrite rules). An Application term (below) refers to a Callable
// uniformly, resolving the Open Question of how an unreduced operation call
// is represented inside a rule template — see SPEC_FULL.md §3.
type Callable interface {
	// QualifiedName returns the "Sort.member" name of this generator or
	// operation.
	QualifiedName() string
	// Arity returns the number of parameters.
	Arity() uint
	// ParameterName returns the name of the i'th parameter.
	ParameterName(i uint) string
	// ParameterSort returns the declared sort of the i'th parameter.
	ParameterSort(i uint) *Sort
	// Codomain returns the sort of values this Callable produces.
	Codomain() *Sort
	// isOperation distinguishes operations from generators without a type
	// switch at every call site; unexported so only this package's two
	// Callable implementations can satisfy it.
	isOperation() bool
}

// ============================================================================
// Application
// ============================================================================

// Application is term variant (G): the application of a generator or
// operation to an ordered mapping of parameter name to argument term. When
// Callable is a *Generator, an Application is free and constant whenever
// every argument is constant (the G variant proper). When Callable is a
// *Operation, the Application is a pending call which the rule evaluator
// (pkg/stew/eval) must reduce before it can be considered a constant.
type Application struct {
	Callable Callable
	// Args maps parameter name to argument term, preserving the Callable's
	// declared parameter order via Callable.ParameterName.
	Args map[string]Term
}

// NewApplication constructs an application term, in positional parameter
// order, of the given Callable to the given arguments.
func NewApplication(c Callable, args ...Term) (*Application, error) {
	if uint(len(args)) != c.Arity() {
		return nil, NewArgumentError(
			"%s takes %d argument(s) but %d were given", c.QualifiedName(), c.Arity(), len(args))
	}

	named := make(map[string]Term, len(args))

	for i, arg := range args {
		pname := c.ParameterName(uint(i))
		pdomain := c.ParameterSort(uint(i))

		if v, ok := arg.(*Variable); ok {
			if !IsSubtype(v.Domain, pdomain) {
				return nil, NewArgumentError(
					"%s: argument `%s` has domain %s, expected %s",
					c.QualifiedName(), pname, v.Domain.Name, pdomain.Name)
			}
		} else if !IsSubtype(sortOf(arg), pdomain) {
			return nil, NewArgumentError(
				"%s: argument `%s` has sort %s, expected %s",
				c.QualifiedName(), pname, sortOf(arg).Name, pdomain.Name)
		}

		named[pname] = arg
	}

	return &Application{Callable: c, Args: named}, nil
}

// NewApplicationNamed constructs an application term from named arguments,
// which must cover exactly the Callable's declared domain.
func NewApplicationNamed(c Callable, args map[string]Term) (*Application, error) {
	ordered := make([]Term, c.Arity())

	for i := uint(0); i < c.Arity(); i++ {
		pname := c.ParameterName(i)

		arg, ok := args[pname]
		if !ok {
			return nil, NewArgumentError("%s: missing argument `%s`", c.QualifiedName(), pname)
		}

		ordered[i] = arg
	}

	return NewApplication(c, ordered...)
}

// Arg returns the i'th argument, in the Callable's declared parameter order.
func (a *Application) Arg(i uint) Term {
	return a.Args[a.Callable.ParameterName(i)]
}

// SortName implements Term.
func (a *Application) SortName() string { return a.Callable.Codomain().Name }

// IsGround implements Term.
func (a *Application) IsGround() bool {
	for _, arg := range a.Args {
		if !arg.IsGround() {
			return false
		}
	}

	return true
}

// IsConstant implements Term. Per §3, only generator applications (not
// pending operation calls) are constants of variant G.
func (a *Application) IsConstant() bool {
	return !a.Callable.isOperation() && a.IsGround()
}

// IsPending reports whether this application is an unreduced operation
// call, i.e. not a free generator term.
func (a *Application) IsPending() bool {
	return a.Callable.isOperation()
}

// Equals implements Term: per §4.1, equality on two ground generator terms
// is same generator and pointwise equality of arguments; equality between a
// constant and a non-constant form of the same sort is false (so pending
// operation applications never compare equal to anything but an identical
// pending application).
func (a *Application) Equals(other Term) bool {
	o, ok := other.(*Application)
	if !ok || a.Callable != o.Callable {
		return false
	}

	if len(a.Args) != len(o.Args) {
		return false
	}

	for name, arg := range a.Args {
		oarg, ok := o.Args[name]
		if !ok || !arg.Equals(oarg) {
			return false
		}
	}

	return true
}

// Hash implements Term.
func (a *Application) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("app:"))
	h.Write([]byte(a.Callable.QualifiedName()))

	names := make([]string, 0, len(a.Args))
	for name := range a.Args {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		h.Write([]byte(":"))
		h.Write([]byte(name))
		h.Write([]byte("="))
		// Hash of the sub-term, folded in as bytes rather than via the
		// generic Sum64 algebra so order-sensitive composition is simple.
		sub := a.Args[name].Hash()
		h.Write([]byte(fmt.Sprintf("%x", sub)))
	}

	return h.Sum64()
}

// String implements Term.
func (a *Application) String() string {
	if len(a.Args) == 0 {
		return a.Callable.QualifiedName()
	}

	if len(a.Args) == 1 {
		return fmt.Sprintf("%s(%s)", a.Callable.QualifiedName(), a.Arg(0).String())
	}

	parts := make([]string, a.Callable.Arity())
	for i := range parts {
		parts[i] = a.Arg(uint(i)).String()
	}

	return fmt.Sprintf("%s(%s)", a.Callable.QualifiedName(), strings.Join(parts, ", "))
}

// ============================================================================
// AttributeRecord
// ============================================================================

// AttributeRecord is term variant (A): a labelled record over a sort's
// attribute descriptors.
type AttributeRecord struct {
	Sort   *Sort
	Values map[string]Term
}

// NewAttributeRecord constructs an attribute record, filling in any missing
// attribute with its declared default, and failing if an attribute has
// neither a supplied value nor a default.
func NewAttributeRecord(s *Sort, values map[string]Term) (*AttributeRecord, error) {
	filled := make(map[string]Term, len(s.Attributes))

	for _, attr := range s.Attributes {
		if v, ok := values[attr.Name]; ok {
			if _, isVar := v.(*Variable); !isVar && !IsSubtype(sortOf(v), attr.Domain) {
				return nil, NewArgumentError(
					"%s: attribute `%s` has sort %s, expected %s",
					s.Name, attr.Name, sortOf(v).Name, attr.Domain.Name)
			}

			filled[attr.Name] = v

			continue
		}

		if attr.Default == nil {
			return nil, NewArgumentError("%s: missing attribute `%s`", s.Name, attr.Name)
		}

		filled[attr.Name] = attr.Default
	}

	return &AttributeRecord{Sort: s, Values: filled}, nil
}

// SortName implements Term.
func (r *AttributeRecord) SortName() string { return r.Sort.Name }

// IsGround implements Term.
func (r *AttributeRecord) IsGround() bool {
	for _, v := range r.Values {
		if !v.IsGround() {
			return false
		}
	}

	return true
}

// IsConstant implements Term.
func (r *AttributeRecord) IsConstant() bool { return r.IsGround() }

// Equals implements Term: pointwise on attributes, per §4.1.
func (r *AttributeRecord) Equals(other Term) bool {
	o, ok := other.(*AttributeRecord)
	if !ok || r.Sort != o.Sort {
		return false
	}

	for name, v := range r.Values {
		ov, ok := o.Values[name]
		if !ok || !v.Equals(ov) {
			return false
		}
	}

	return len(r.Values) == len(o.Values)
}

// Hash implements Term.
func (r *AttributeRecord) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("rec:"))
	h.Write([]byte(r.Sort.Name))

	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		h.Write([]byte(":"))
		h.Write([]byte(name))
		h.Write([]byte(fmt.Sprintf("=%x", r.Values[name].Hash())))
	}

	return h.Sum64()
}

// String implements Term.
func (r *AttributeRecord) String() string {
	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, r.Values[name].String())
	}

	return fmt.Sprintf("%s{%s}", r.Sort.Name, strings.Join(parts, ", "))
}

// sortOf returns the sort of a ground or open term; equivalent to
// sort_of(term) in the matcher's contract (§4.3).
func sortOf(t Term) *Sort {
	switch v := t.(type) {
	case *Variable:
		return v.Domain
	case *Application:
		return v.Callable.Codomain()
	case *AttributeRecord:
		return v.Sort
	default:
		return nil
	}
}

// SortOf is the exported form of sortOf, for use by the matcher and
// evaluator sub-packages.
func SortOf(t Term) *Sort {
	return sortOf(t)
}
