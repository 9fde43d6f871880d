package stew

import (
	"github.com/sirupsen/logrus"
)

// SortBody carries the pieces of a sort's declaration a builder function
// passed to Registry.DefineSort fills in, once it has that sort's own
// skeleton available to reference.
type SortBody struct {
	Attributes     []AttributeDescriptor
	Generators     []*Generator
	Operations     []*Operation
	AbstractParams map[string]*Sort
	// TrueValue designates this sort's truth constant (§4.4c), for sorts
	// meant to be used as a guard's codomain (e.g. a Boolean sort).
	TrueValue Term
}

// Registry is the process-wide catalogue mapping sort names to sort
// descriptors, and qualified names to generator and operation descriptors
// (§4.2). It preserves declaration order and is constructed monotonically:
// once specification loading has finished, it is read-only and safe to
// share among goroutines for reads (§5).
type Registry struct {
	sorts      []*Sort
	sortIndex  map[string]*Sort
	generators map[string]*Generator
	operations map[string]*Operation
	log        logrus.FieldLogger
}

// NewRegistry constructs an empty registry. A nil logger disables tracing;
// callers that want registration tracing pass a *logrus.Logger (or
// *logrus.Entry), following the teacher's convention of threading a
// FieldLogger through rather than using a package-global logger.
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.New()
		log.(*logrus.Logger).SetOutput(discardWriter{})
	}

	return &Registry{
		sortIndex:  make(map[string]*Sort),
		generators: make(map[string]*Generator),
		operations: make(map[string]*Operation),
		log:        log,
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// DefineSort declares a new sort under name and calls build with that
// sort's skeleton (a stable-identity, not-yet-populated *Sort) so that
// attribute domains, generator domains/codomain, and operation signatures
// may reference the sort being declared before it exists in finished form
// — the two-phase construction of DESIGN.md's "self-referential
// signatures" note. DefineSort registers the sort's generators and
// operations under their qualified names, and validates that every sort
// reachable from this sort's signature is either this sort itself or
// already present in the registry.
func (r *Registry) DefineSort(name string, build func(self *Sort) SortBody) (*Sort, error) {
	if _, exists := r.sortIndex[name]; exists {
		return nil, NewStewError(name, "duplicate sort: `%s`", name)
	}

	self := NewSort(name)
	// Register early (phase 1) so self-references resolved inside build via
	// r.LookupSort(name) see the same pointer.
	r.sortIndex[name] = self
	r.sorts = append(r.sorts, self)

	body := build(self)

	self.Attributes = body.Attributes
	self.Generators = body.Generators
	self.Operations = body.Operations
	self.AbstractParams = body.AbstractParams
	self.TrueValue = body.TrueValue

	rollback := func() {
		delete(r.sortIndex, name)
		r.sorts = r.sorts[:len(r.sorts)-1]

		for _, g := range self.Generators {
			if r.generators[g.Name] == g {
				delete(r.generators, g.Name)
			}
		}

		for _, o := range self.Operations {
			if r.operations[o.Name] == o {
				delete(r.operations, o.Name)
			}
		}
	}

	if err := r.validateSelfReferences(self); err != nil {
		rollback()
		return nil, err
	}

	for _, g := range self.Generators {
		if _, exists := r.generators[g.Name]; exists {
			rollback()
			return nil, NewStewError(g.Name, "duplicate generator: `%s`", g.Name)
		}

		r.generators[g.Name] = g
		r.log.WithField("generator", g.Name).Debug("registered generator")
	}

	for _, o := range self.Operations {
		if _, exists := r.operations[o.Name]; exists {
			rollback()
			return nil, NewStewError(o.Name, "duplicate operation: `%s`", o.Name)
		}

		r.operations[o.Name] = o
		r.log.WithField("operation", o.Name).Debug("registered operation")
	}

	r.log.WithField("sort", name).Debug("registered sort")

	return self, nil
}

// validateSelfReferences checks the invariant of §3: attribute domains,
// generator domains/codomain, and operation signatures reference only
// sorts reachable from this registry — i.e. either self, or a sort already
// registered. A sort bearing self's name but a different identity means a
// caller built a second, disconnected *Sort for a self-reference instead of
// using the skeleton DefineSort handed them: that is the "unresolved
// self-reference" of §4.2/§7.
func (r *Registry) validateSelfReferences(self *Sort) error {
	check := func(s *Sort) error {
		if s == nil {
			return nil
		}

		if s.IsAbstractParameter() {
			// Abstract sort parameter markers (§4.6) are placeholders by
			// design; they are bound to a concrete, registry-reachable sort
			// only once Specialize is called, so they are exempt from the
			// reachability check below.
			return nil
		}

		if s.Name == self.Name {
			if s != self {
				return NewSortError(self.Name, "unresolved self-reference in sort `%s`", self.Name)
			}

			return nil
		}

		if _, ok := r.sortIndex[s.Name]; !ok {
			return NewSortError(s.Name, "sort `%s` is not reachable from the registry", s.Name)
		}

		return nil
	}

	for _, attr := range self.Attributes {
		if err := check(attr.Domain); err != nil {
			return err
		}
	}

	for _, g := range self.Generators {
		for _, p := range g.Parameters {
			if err := check(p.Sort); err != nil {
				return err
			}
		}

		if err := check(g.Codomain_); err != nil {
			return err
		}
	}

	for _, o := range self.Operations {
		for _, p := range o.Parameters {
			if err := check(p.Sort); err != nil {
				return err
			}
		}

		if err := check(o.Codomain_); err != nil {
			return err
		}
	}

	return nil
}

// Sorts returns all registered sorts, in declaration order.
func (r *Registry) Sorts() []*Sort {
	return r.sorts
}

// Generators returns all registered generators, grouped by declaring sort
// in declaration order, and within each sort in the order it declared them.
func (r *Registry) Generators() []*Generator {
	gens := make([]*Generator, 0, len(r.generators))
	for _, s := range r.sorts {
		gens = append(gens, s.Generators...)
	}

	return gens
}

// Operations returns all registered operations, grouped by declaring sort.
func (r *Registry) Operations() []*Operation {
	ops := make([]*Operation, 0, len(r.operations))
	for _, s := range r.sorts {
		ops = append(ops, s.Operations...)
	}

	return ops
}

// LookupSort looks up a sort by its (unqualified) name.
func (r *Registry) LookupSort(name string) (*Sort, bool) {
	s, ok := r.sortIndex[name]
	return s, ok
}

// LookupGenerator looks up a generator by its qualified name.
func (r *Registry) LookupGenerator(name string) (*Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// LookupOperation looks up an operation by its qualified name.
func (r *Registry) LookupOperation(name string) (*Operation, bool) {
	o, ok := r.operations[name]
	return o, ok
}
