// Package translate implements the optional external translator of
// SPEC_FULL.md §6: it renders a registry's operations as a block of
// rewriting rules in a plain-text format, `guard => head(p1,...,pn) = rhs`,
// grounded on stew/translators/simple.py. Rules whose right-hand side
// repeats a pattern variable ("non-linear", per spec.md §9) are linearized
// first by introducing an auxiliary `copy` operation, per testable
// property 10.
package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
)

// Registry renders every operation of reg, in declaration order, as a
// single translated text block.
func Registry(reg *stew.Registry) (string, error) {
	var b strings.Builder

	for _, op := range reg.Operations() {
		text, err := Operation(op)
		if err != nil {
			return "", err
		}

		b.WriteString(text)
	}

	return b.String(), nil
}

// Operation renders a single operation's rules, one per line (preceded by
// any auxiliary `copy` declarations its non-linear rules require).
func Operation(op *stew.Operation) (string, error) {
	var b strings.Builder

	for _, rule := range op.Rules {
		aux, rhs, err := linearize(rule.RHS)
		if err != nil {
			return "", err
		}

		for _, line := range aux {
			b.WriteString(line)
			b.WriteString("\n")
		}

		head, err := renderHead(op, rule)
		if err != nil {
			return "", err
		}

		guard := renderGuards(rule.Guards)

		if guard == "" {
			fmt.Fprintf(&b, "%s = %s\n", head, rhs.String())
		} else {
			fmt.Fprintf(&b, "%s => %s = %s\n", guard, head, rhs.String())
		}
	}

	return b.String(), nil
}

func renderHead(op *stew.Operation, rule stew.Rule) (string, error) {
	byParam := make(map[string]stew.Term, len(rule.Matches))
	for _, m := range rule.Matches {
		if !op.HasParameter(m.Param) {
			return "", stew.NewTranslationError("%s: rule matches unknown parameter `%s`", op.Name, m.Param)
		}

		byParam[m.Param] = m.Pattern
	}

	parts := make([]string, op.Arity())

	for i := range parts {
		name := op.ParameterName(uint(i))

		if pat, ok := byParam[name]; ok {
			parts[i] = pat.String()
		} else {
			parts[i] = "$" + name
		}
	}

	if len(parts) == 0 {
		return op.Name, nil
	}

	return fmt.Sprintf("%s(%s)", op.Name, strings.Join(parts, ", ")), nil
}

func renderGuards(guards []stew.Term) string {
	parts := make([]string, len(guards))
	for i, g := range guards {
		parts[i] = g.String()
	}

	return strings.Join(parts, " and ")
}

// linearize rewrites rhs so that no pattern variable occurs more than once,
// returning any auxiliary `copy` declarations needed (one per duplicated
// variable) alongside the rewritten term. A variable occurring n > 1 times
// is left as-is at its first occurrence and renamed `name$2, ..., name$n`
// at each subsequent one; the auxiliary line declares
// `copy(name) = (name, name$2, ..., name$n)`, matching the "duplicating via
// auxiliary copy-operations" note of spec.md §9.
func linearize(rhs stew.Term) ([]string, stew.Term, error) {
	total := make(map[string]int)
	countOccurrences(rhs, total)

	repeated := make([]string, 0)

	for name, n := range total {
		if n > 1 {
			repeated = append(repeated, name)
		}
	}

	if len(repeated) == 0 {
		return nil, rhs, nil
	}

	sort.Strings(repeated)

	seen := make(map[string]int)
	renamed := renameRepeats(rhs, seen, total)

	aux := make([]string, len(repeated))

	for i, name := range repeated {
		copies := make([]string, total[name])
		copies[0] = "$" + name

		for k := 2; k <= total[name]; k++ {
			copies[k-1] = fmt.Sprintf("$%s$%d", name, k)
		}

		aux[i] = fmt.Sprintf("copy($%s) = (%s)", name, strings.Join(copies, ", "))
	}

	return aux, renamed, nil
}

func countOccurrences(t stew.Term, counts map[string]int) {
	switch v := t.(type) {
	case *stew.Variable:
		counts[v.Name]++
	case *stew.Application:
		for _, name := range sortedKeys(v.Args) {
			countOccurrences(v.Args[name], counts)
		}
	case *stew.AttributeRecord:
		for _, name := range sortedKeys(v.Values) {
			countOccurrences(v.Values[name], counts)
		}
	}
}

func renameRepeats(t stew.Term, seen map[string]int, total map[string]int) stew.Term {
	switch v := t.(type) {
	case *stew.Variable:
		if total[v.Name] <= 1 {
			return v
		}

		seen[v.Name]++

		if seen[v.Name] == 1 {
			return v
		}

		return &stew.Variable{Name: fmt.Sprintf("%s$%d", v.Name, seen[v.Name]), Domain: v.Domain}
	case *stew.Application:
		args := make(map[string]stew.Term, len(v.Args))

		for _, name := range sortedKeys(v.Args) {
			args[name] = renameRepeats(v.Args[name], seen, total)
		}

		return &stew.Application{Callable: v.Callable, Args: args}
	case *stew.AttributeRecord:
		values := make(map[string]stew.Term, len(v.Values))

		for _, name := range sortedKeys(v.Values) {
			values[name] = renameRepeats(v.Values[name], seen, total)
		}

		return &stew.AttributeRecord{Sort: v.Sort, Values: values}
	default:
		return t
	}
}

func sortedKeys(m map[string]stew.Term) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
