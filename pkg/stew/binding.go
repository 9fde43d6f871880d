package stew

// Binding maps variable name to the subterm it was matched against (§3).
// A Binding is produced fresh for each rule attempt and never leaks between
// rules (§5).
type Binding map[string]Term

// NewBinding returns an empty binding.
func NewBinding() Binding {
	return make(Binding)
}

// Seeded returns a fresh binding pre-populated with name -> term, used by
// the evaluator to seed a rule attempt with the operation's own parameter
// names bound to its normalised arguments (§4.4a).
func Seeded(args map[string]Term) Binding {
	b := make(Binding, len(args))
	for name, term := range args {
		b[name] = term
	}

	return b
}

// Clone returns a shallow copy of this binding, used by the matcher to make
// matching transactional (§4.3): a mismatch restores the binding to its
// state at entry.
func (b Binding) Clone() Binding {
	c := make(Binding, len(b))
	for k, v := range b {
		c[k] = v
	}

	return c
}

// Lookup returns the term bound to name, or (nil, false) if name is
// unbound. A guard or right-hand-side template referencing an unbound
// variable is the "internal matcher error" of §7; Instantiate reports it
// via InstantiationError rather than panicking.
func (b Binding) Lookup(name string) (Term, bool) {
	t, ok := b[name]
	return t, ok
}

// Bind records name -> term in this binding. Callers are responsible for
// having already checked consistent binding (Binding.Lookup) when name may
// already be bound.
func (b Binding) Bind(name string, term Term) {
	b[name] = term
}

// InstantiationError is the "internal matcher error" of §7: a variable
// lookup in a binding when the variable was not bound. The rule evaluator
// catches it and converts it into "this rule did not apply", trying the
// next rule; it never escapes a top-level Evaluate call.
type InstantiationError struct {
	Variable string
}

// Error implements the error interface.
func (e *InstantiationError) Error() string {
	return "unbound variable `" + e.Variable + "` referenced in rule template"
}

// Instantiate substitutes a binding through a template term, producing a
// fresh, binding-free term. It is used both to build a guard's concrete
// instance and to build a rule's right-hand side before recursive
// normalisation (§4.4c-d).
func Instantiate(template Term, b Binding) (Term, error) {
	switch t := template.(type) {
	case *Variable:
		v, ok := b.Lookup(t.Name)
		if !ok {
			return nil, &InstantiationError{Variable: t.Name}
		}

		return v, nil
	case *Application:
		args := make(map[string]Term, len(t.Args))

		for name, arg := range t.Args {
			inst, err := Instantiate(arg, b)
			if err != nil {
				return nil, err
			}

			args[name] = inst
		}

		return &Application{Callable: t.Callable, Args: args}, nil
	case *AttributeRecord:
		values := make(map[string]Term, len(t.Values))

		for name, v := range t.Values {
			inst, err := Instantiate(v, b)
			if err != nil {
				return nil, err
			}

			values[name] = inst
		}

		return &AttributeRecord{Sort: t.Sort, Values: values}, nil
	default:
		return template, nil
	}
}
