package types

import (
	"strings"
)

// Display renders t for users: unresolved variables show as unknown,
// and function types as (params) -> return.
func Display(t Type) string {
	return show(t, func(Type) string { return "unknown" })
}

// DisplayTable renders every entry of table as 'name: type', one per line, sorted by name
func DisplayTable(table *Table) string {
	sb := &strings.Builder{}
	for name, t := range table.All() {
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(Display(t))
		sb.WriteString("\n")
	}
	return sb.String()
}

func show(t Type, showVar func(Type) string) string {
	sb := &strings.Builder{}
	if t.IsGeneric() {
		sb.WriteString("forall ")
		sb.WriteString(strings.Join(t.Quantified, " "))
		sb.WriteString(". ")
	}
	showWalker(sb, t, showVar)
	return sb.String()
}

func showWalker(sb *strings.Builder, t Type, showVar func(Type) string) {
	switch {
	case t.IsVar():
		sb.WriteString(showVar(t))
	case t.IsFn() && len(t.Args) > 0:
		sb.WriteString("(")
		for i, param := range t.Params() {
			if i > 0 {
				sb.WriteString(", ")
			}
			showWalker(sb, param, showVar)
		}
		sb.WriteString(") -> ")
		ret, _ := t.Return()
		showWalker(sb, ret, showVar)
	case len(t.Args) > 0:
		sb.WriteString(t.Name)
		sb.WriteString("<")
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			showWalker(sb, arg, showVar)
		}
		sb.WriteString(">")
	default:
		sb.WriteString(t.Name)
	}
}
