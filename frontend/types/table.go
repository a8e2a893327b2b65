package types

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// Qualify returns the table key of name declared inside the function scope
func Qualify(scope, name string) string {
	return scope + "::" + name
}

// Table maps names to their types. Top-level functions are keyed by their bare name,
// parameters and local bindings by their qualified name (see Qualify).
//
// Iteration is always in name order.
type Table struct {
	entries *immutable.SortedMap[string, Type]
}

func NewTable() *Table {
	return &Table{entries: immutable.NewSortedMap[string, Type](nil)}
}

// Set binds name to t, replacing any earlier binding
func (t *Table) Set(name string, typ Type) {
	t.entries = t.entries.Set(name, typ)
}

func (t *Table) Get(name string) (Type, bool) {
	return t.entries.Get(name)
}

func (t *Table) Len() int {
	return t.entries.Len()
}

// All iterates over a snapshot of the table, so it is safe to Set while iterating
func (t *Table) All() iter.Seq2[string, Type] {
	entries := t.entries
	return func(yield func(string, Type) bool) {
		it := entries.Iterator()
		for !it.Done() {
			name, typ, _ := it.Next()
			if !yield(name, typ) {
				return
			}
		}
	}
}
