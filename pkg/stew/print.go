package stew

// Print renders a term using the engine's pretty-printer (§4.1(iv)):
// generator terms as Name(arg1, arg2, ...), nullary generators bare, and
// attribute records as Sort{field: value, ...}.
func Print(t Term) string {
	return t.String()
}
