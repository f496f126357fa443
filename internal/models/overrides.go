package models

import "sort"

// Overrides maps a checkpoint index to the action the player picked for it.
// Indexes without an entry use the default policy.
type Overrides map[int]Action

// Clone returns an independent copy (nil stays an empty map)
func (o Overrides) Clone() Overrides {
	out := make(Overrides, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// With returns a copy where index is set to action. Other entries are untouched.
func (o Overrides) With(index int, action Action) Overrides {
	out := o.Clone()
	out[index] = action
	return out
}

// Indexes returns the overridden indexes in ascending order
func (o Overrides) Indexes() []int {
	indexes := make([]int, 0, len(o))
	for k := range o {
		indexes = append(indexes, k)
	}
	sort.Ints(indexes)
	return indexes
}
