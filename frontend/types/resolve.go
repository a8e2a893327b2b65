package types

import (
	"github.com/hashicorp/go-set/v3"
)

// DefaultMaxResolveDepth bounds how deep a single resolution may recurse
const DefaultMaxResolveDepth = 512

// Resolve is ResolveWithin with DefaultMaxResolveDepth
func (c *Constraints) Resolve(t Type) Type {
	resolved, _ := c.ResolveWithin(t, DefaultMaxResolveDepth)
	return resolved
}

// ResolveWithin rewrites t by following links until it is as concrete as possible.
//
// A variable is replaced by the first successful resolution of a type it is linked to,
// trying links in insertion order. A constructor is rebuilt with its arguments resolved.
// A variable that can only reach itself again, or nothing concrete, stays as it is.
//
// exhausted reports whether maxDepth was hit, in which case the affected parts of t
// are returned unresolved.
//
// Every variable is explored at most once between two successful resolutions, so
// densely linked variables without a concrete anchor fail in polynomial time.
func (c *Constraints) ResolveWithin(t Type, maxDepth int) (resolved Type, exhausted bool) {
	r := &resolution{
		links:    c.links,
		visiting: set.New[string](0),
		failed:   set.New[string](0),
		maxDepth: maxDepth,
	}
	resolved, _ = r.resolve(t)
	return resolved, r.exhausted
}

type resolution struct {
	links []Link
	// visiting holds the variables on the current path, so a cycle
	// through links ends as unresolved rather than looping
	visiting *set.Set[string]
	// failed holds the variables explored without success since the last variable resolved.
	// Until something resolves, a failed variable can only reach a concrete type through a
	// variable that is still being visited, so exploring it again would fail again.
	failed    *set.Set[string]
	depth     int
	maxDepth  int
	exhausted bool
}

// resolve returns the resolution of t, and false if t is a variable that did not resolve
func (r *resolution) resolve(t Type) (Type, bool) {
	if r.depth >= r.maxDepth {
		r.exhausted = true
		return t, false
	}
	r.depth++
	defer func() { r.depth-- }()

	if !t.IsVar() {
		if len(t.Args) == 0 {
			return t, true
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i], _ = r.resolve(arg)
		}
		return Type{Name: t.Name, Args: args, Quantified: t.Quantified}, true
	}

	if r.visiting.Contains(t.Name) || r.failed.Contains(t.Name) {
		return t, false
	}
	r.visiting.Insert(t.Name)
	defer r.visiting.Remove(t.Name)

	for _, link := range r.links {
		var other Type
		switch {
		case Equal(link.Fst, t):
			other = link.Snd
		case Equal(link.Snd, t):
			other = link.Fst
		default:
			continue
		}
		if resolved, ok := r.resolve(other); ok {
			r.failed = set.New[string](0)
			return resolved, true
		}
	}
	r.failed.Insert(t.Name)
	return t, false
}
