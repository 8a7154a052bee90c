package switcher

import (
	"github.com/on-the-ground/switcher_go/internal/memo"
)

type decision[O any] struct {
	value O
	ok    bool
}

// Tableize memoizes the decisions of s, keeping up to maxTableSize inputs
// per generation. The predicates of s must be pure.
//
// Inputs are remembered by value, or by their text when they implement
// fmt.Stringer. Inputs that are neither comparable nor Stringers panic.
func Tableize[I, O any](s *Switcher[I, O], maxTableSize uint32) func(I) (O, bool) {
	return TableizeSharded(s, 1, maxTableSize)
}

// TableizeSharded is Tableize with the table split into numShards shards
// to spread concurrent writers.
func TableizeSharded[I, O any](s *Switcher[I, O], numShards int, maxTableSize uint32) func(I) (O, bool) {
	table := memo.New[decision[O]](numShards, maxTableSize)
	return func(variable I) (O, bool) {
		key := memo.Key(variable)
		if d, ok := table.Load(key); ok {
			return d.value, d.ok
		}
		v, ok := s.Match(variable)
		table.Store(key, decision[O]{value: v, ok: ok})
		return v, ok
	}
}
