package types

import "strconv"

// Fresher keeps track of new variable IDs.
// It is mutable and not suitable for concurrent use: every inference run owns its own,
// so variable names are never shared between runs.
type Fresher struct {
	freshCount uint64
}

func NewFresher() *Fresher {
	return &Fresher{freshCount: 0}
}

// Fresh returns a variable that has never been returned by this Fresher before
func (f *Fresher) Fresh() Type {
	v := Type{Name: varTag + strconv.FormatUint(f.freshCount, 10)}
	f.freshCount++
	return v
}

// FreshN returns n distinct fresh variables
func (f *Fresher) FreshN(n int) []Type {
	vars := make([]Type, n)
	for i := range vars {
		vars[i] = f.Fresh()
	}
	return vars
}

// Count is the number of variables created so far
func (f *Fresher) Count() uint64 {
	return f.freshCount
}
