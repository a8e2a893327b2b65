package types

// Instantiate returns a copy of scheme where every quantified name is replaced by
// a variable fresh from f, the same variable for every occurrence of the same name.
//
// A scheme without quantified names is returned unchanged.
func Instantiate(f *Fresher, scheme Type) Type {
	if !scheme.IsGeneric() {
		return scheme
	}
	replacements := make(map[string]Type, len(scheme.Quantified))
	for _, name := range scheme.Quantified {
		replacements[name] = f.Fresh()
	}
	return substitute(scheme, replacements)
}

// substitute rebuilds t with every name in replacements swapped. The copy carries no quantified names.
func substitute(t Type, replacements map[string]Type) Type {
	if replacement, ok := replacements[t.Name]; ok {
		return replacement
	}
	if len(t.Args) == 0 {
		return Type{Name: t.Name}
	}
	args := make([]Type, len(t.Args))
	for i, arg := range t.Args {
		args[i] = substitute(arg, replacements)
	}
	return Type{Name: t.Name, Args: args}
}
