package stew

import "fmt"

// NewAbstractSort creates a named placeholder sort usable as an abstract
// sort parameter (§4.6): it carries no generators or operations of its own
// and exists only to be referenced from another sort's attribute/generator/
// operation signatures until Specialize replaces it with a concrete sort.
//
// implements is an optional constraint: a concrete sort bound to this
// parameter must be a subtype of implements. def is an optional default
// concrete sort used by callers that want an un-specialized convenience
// value; neither is required (nil is permitted for either).
func NewAbstractSort(name string, implements *Sort, def *Sort) *Sort {
	return &Sort{Name: name, abstractMarker: true, implementsConstraint: implements, defaultConcrete: def}
}

// IsAbstractParameter reports whether this sort is an abstract sort
// parameter marker (as opposed to a concrete or specialized sort).
func (s *Sort) IsAbstractParameter() bool {
	return s.abstractMarker
}

// Specialize derives a new concrete sort U' from u by substituting every
// occurrence of the abstract parameter named paramName (and of u itself, in
// self-referencing generator/operation signatures) with concrete (§4.6).
// IsSubtype(U', u) holds of the result; two sorts specialized from the same
// u with distinct concrete sorts are incomparable (neither a subtype of the
// other), though both remain subtypes of u.
func Specialize(u *Sort, paramName string, concrete *Sort) (*Sort, error) {
	marker, ok := u.AbstractParams[paramName]
	if !ok {
		return nil, NewArgumentError("%s has no abstract parameter `%s`", u.Name, paramName)
	}

	if !marker.IsAbstractParameter() {
		return nil, NewArgumentError("%s: `%s` has already been specialized", u.Name, paramName)
	}

	if marker.implementsConstraint != nil && !IsSubtype(concrete, marker.implementsConstraint) {
		return nil, NewArgumentError(
			"%s: `%s` requires a sort implementing %s, got %s",
			u.Name, paramName, marker.implementsConstraint.Name, concrete.Name)
	}

	derived := &Sort{
		Name:            fmt.Sprintf("%s[%s=%s]", u.Name, paramName, concrete.Name),
		specializedFrom: u,
		concreteParam:   paramName,
		concreteSort:    concrete,
		TrueValue:       u.TrueValue,
	}

	subst := func(s *Sort) *Sort {
		switch s {
		case marker:
			return concrete
		case u:
			return derived
		default:
			return s
		}
	}

	derived.AbstractParams = make(map[string]*Sort, len(u.AbstractParams))
	for name, param := range u.AbstractParams {
		if name == paramName {
			derived.AbstractParams[name] = concrete
		} else {
			derived.AbstractParams[name] = param
		}
	}

	derived.Attributes = make([]AttributeDescriptor, len(u.Attributes))
	for i, attr := range u.Attributes {
		derived.Attributes[i] = AttributeDescriptor{
			Name:    attr.Name,
			Domain:  subst(attr.Domain),
			Default: attr.Default,
		}
	}

	derived.Generators = make([]*Generator, len(u.Generators))
	for i, g := range u.Generators {
		params := make([]Parameter, len(g.Parameters))
		for j, p := range g.Parameters {
			params[j] = Parameter{Name: p.Name, Sort: subst(p.Sort)}
		}

		derived.Generators[i] = &Generator{
			Name:       fmt.Sprintf("%s.%s", derived.Name, memberOf(g.Name)),
			Parameters: params,
			Codomain_:  subst(g.Codomain_),
		}
	}

	derived.Operations = make([]*Operation, len(u.Operations))
	for i, o := range u.Operations {
		params := make([]Parameter, len(o.Parameters))
		for j, p := range o.Parameters {
			params[j] = Parameter{Name: p.Name, Sort: subst(p.Sort)}
		}

		derived.Operations[i] = &Operation{
			Name:       fmt.Sprintf("%s.%s", derived.Name, memberOf(o.Name)),
			Parameters: params,
			Codomain_:  subst(o.Codomain_),
			Rules:      o.Rules,
		}
	}

	return derived, nil
}

// memberOf returns the member-name suffix of a qualified name (the part
// after the last '.'), or the whole name if unqualified.
func memberOf(qualified string) string {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[i+1:]
		}
	}

	return qualified
}
