package stew

// Parameter is an ordered (name, sort) pair in a Generator's or Operation's
// domain (§3).
type Parameter struct {
	Name string
	Sort *Sort
}

// Generator is a (qualified name, ordered domain, codomain) triple (§3).
// Generators are free: GeneratorFreeness (§8) holds because equality on the
// Application terms they build is structural (Application.Equals).
type Generator struct {
	Name       string // qualified, e.g. "Nat.suc"
	Parameters []Parameter
	Codomain_  *Sort
}

var _ Callable = (*Generator)(nil)

// NewGenerator constructs a generator descriptor. It does not register the
// generator under any sort; use Registry.DefineSort for that.
func NewGenerator(name string, codomain *Sort, params ...Parameter) *Generator {
	return &Generator{Name: name, Parameters: params, Codomain_: codomain}
}

// QualifiedName implements Callable.
func (g *Generator) QualifiedName() string { return g.Name }

// Arity implements Callable.
func (g *Generator) Arity() uint { return uint(len(g.Parameters)) }

// ParameterName implements Callable.
func (g *Generator) ParameterName(i uint) string { return g.Parameters[i].Name }

// ParameterSort implements Callable.
func (g *Generator) ParameterSort(i uint) *Sort { return g.Parameters[i].Sort }

// Codomain implements Callable.
func (g *Generator) Codomain() *Sort { return g.Codomain_ }

// isOperation implements Callable.
func (g *Generator) isOperation() bool { return false }

// New builds a ground or open generator term from positional arguments, per
// §4.1(i)-(ii): arity and domain-assignability are validated, failing with
// ArgumentError otherwise.
func (g *Generator) New(args ...Term) (*Application, error) {
	return NewApplication(g, args...)
}

// NewNamed builds a generator term from named arguments, which must cover
// exactly the generator's declared domain.
func (g *Generator) NewNamed(args map[string]Term) (*Application, error) {
	return NewApplicationNamed(g, args)
}

// Call is the single-positional-argument calling convention of §4.1(ii): a
// generator with exactly one parameter may be invoked with a bare value.
// Calling a multi-parameter generator this way is an ArgumentError — use
// NewNamed instead.
func (g *Generator) Call(arg Term) (*Application, error) {
	if g.Arity() != 1 {
		return nil, NewArgumentError(
			"%s takes %d argument(s); cannot use more than 1 unnamed parameter",
			g.Name, g.Arity())
	}

	return g.New(arg)
}
