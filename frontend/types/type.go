package types

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/xtgo/set"
)

// FnName is the constructor of function types. The arguments of a function
// type are its parameter types followed by its return type.
const FnName = "@fn"

// varTag prefixes the name of every unification variable. Constructor names
// never start with it.
const varTag = "'t"

// Type is an immutable type constructor: a name applied to ordered argument types.
//
// A Type whose name is varTag followed by a number is an unresolved unification
// variable (see Fresher). Every other name is a constructor, like int, bool or @fn.
//
// A Type with Quantified names is a generic scheme: every occurrence of a quantified
// name inside it is replaced by a fresh variable each time the scheme is used (see Instantiate).
type Type struct {
	Name       string
	Args       []Type
	Quantified []string
}

var (
	Int  = Con("int")
	Bool = Con("bool")
)

// Con builds the type constructor name applied to args
func Con(name string, args ...Type) Type {
	if len(args) == 0 {
		return Type{Name: name}
	}
	return Type{Name: name, Args: args}
}

// Fn builds the function type taking params and returning ret
func Fn(params []Type, ret Type) Type {
	args := make([]Type, 0, len(params)+1)
	args = append(args, params...)
	args = append(args, ret)
	return Type{Name: FnName, Args: args}
}

// NewScheme quantifies t over the given names. The names are kept sorted and without duplicates.
func NewScheme(quantified []string, t Type) Type {
	names := sort.StringSlice(slices.Clone(quantified))
	sort.Sort(names)
	names = names[:set.Uniq(names)]
	if len(names) == 0 {
		names = nil
	}
	return Type{Name: t.Name, Args: t.Args, Quantified: names}
}

// IsVar reports whether t is an unresolved unification variable
func (t Type) IsVar() bool {
	digits, ok := strings.CutPrefix(t.Name, varTag)
	if !ok || digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t Type) IsFn() bool { return t.Name == FnName }

// IsGeneric reports whether t is a scheme that needs instantiating on every use
func (t Type) IsGeneric() bool { return len(t.Quantified) > 0 }

// Arity returns the number of parameters of a function type, or -1 if t is not one
func (t Type) Arity() int {
	if !t.IsFn() || len(t.Args) == 0 {
		return -1
	}
	return len(t.Args) - 1
}

// Return returns the trailing argument slot of t, which is the
// return type for function types
func (t Type) Return() (Type, bool) {
	if len(t.Args) == 0 {
		return Type{}, false
	}
	return t.Args[len(t.Args)-1], true
}

// Params returns the parameter types of a function type
func (t Type) Params() []Type {
	if t.Arity() < 0 {
		return nil
	}
	return t.Args[:len(t.Args)-1]
}

// Equal is a deep, order-sensitive comparison of name, arguments and quantified names.
//
// Two schemes that only differ in the spelling of their quantified names are not equal.
func Equal(a, b Type) bool {
	if a.Name != b.Name || len(a.Args) != len(b.Args) || !slices.Equal(a.Quantified, b.Quantified) {
		return false
	}
	for i := range a.Args {
		if !Equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// Vars returns the sorted names of the unresolved variables occurring in t
func Vars(t Type) []string {
	if t.IsVar() {
		return []string{t.Name}
	}
	var vars sort.StringSlice
	for _, arg := range t.Args {
		argVars := Vars(arg)
		if len(argVars) == 0 {
			continue
		}
		pivot := len(vars)
		vars = append(vars, argVars...)
		vars = vars[:set.Union(vars, pivot)]
	}
	return vars
}

func (t Type) String() string {
	return show(t, func(v Type) string { return v.Name })
}

func (t Type) LogValue() slog.Value {
	return slog.StringValue(t.String())
}
