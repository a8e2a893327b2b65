package types

import (
	"iter"
	"slices"

	"github.com/cottand/zed/util"
)

// Link is an equality between two types, recorded while inferring
type Link = util.Pair[Type, Type]

// Constraints is the ordered store of links between types.
// Links are only ever added; nothing is unified eagerly.
type Constraints struct {
	links []Link
}

func NewConstraints() *Constraints {
	return &Constraints{}
}

// Conflict is a pair of function types that were linked but take a different number of arguments
type Conflict struct {
	Expected Type
	Found    Type
}

// Link records that a and b denote the same type.
//
// Two function types are never stored as a pair: their argument slots are linked
// position-wise instead. If they differ in arity, a Conflict is returned, and the aligned
// parameters and the return slots are still linked.
// A link between structurally equal types, or one already present in either order, is skipped.
func (c *Constraints) Link(a, b Type) []Conflict {
	if a.IsFn() && b.IsFn() && len(a.Args) > 0 && len(b.Args) > 0 {
		var conflicts []Conflict
		if len(a.Args) != len(b.Args) {
			conflicts = append(conflicts, Conflict{Expected: a, Found: b})
			aligned := min(len(a.Args), len(b.Args)) - 1
			for i := 0; i < aligned; i++ {
				conflicts = append(conflicts, c.Link(a.Args[i], b.Args[i])...)
			}
			aRet, _ := a.Return()
			bRet, _ := b.Return()
			return append(conflicts, c.Link(aRet, bRet)...)
		}
		for i := range a.Args {
			conflicts = append(conflicts, c.Link(a.Args[i], b.Args[i])...)
		}
		return conflicts
	}
	if Equal(a, b) || c.Contains(a, b) {
		return nil
	}
	c.links = append(c.links, util.NewPair(a, b))
	return nil
}

// Contains reports whether a and b are linked, in either order
func (c *Constraints) Contains(a, b Type) bool {
	for _, link := range c.links {
		if Equal(link.Fst, a) && Equal(link.Snd, b) {
			return true
		}
		if Equal(link.Fst, b) && Equal(link.Snd, a) {
			return true
		}
	}
	return false
}

func (c *Constraints) Len() int {
	return len(c.links)
}

// Links returns a copy of the stored links, in insertion order
func (c *Constraints) Links() []Link {
	out := make([]Link, len(c.links))
	copy(out, c.links)
	return out
}

// All iterates over the stored links in insertion order
func (c *Constraints) All() iter.Seq[Link] {
	return slices.Values(c.links)
}
