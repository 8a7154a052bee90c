package switcher

import (
	"math"
	"sort"
	"strconv"

	"github.com/on-the-ground/switcher_go/switcher/loose"
)

// Shape identifies which kind of clauses a Definition holds.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeKeyed
	ShapeListed
)

func (s Shape) String() string {
	switch s {
	case ShapeKeyed:
		return "keyed"
	case ShapeListed:
		return "listed"
	default:
		return "none"
	}
}

// Entry binds a textual key to a value.
type Entry[O any] struct {
	Key   string
	Value O
}

// KeyMapping is an ordered set of keyed clauses. Earlier entries win.
type KeyMapping[O any] []Entry[O]

// Clause pairs a predicate with the value selected when it returns true.
// A clause with a nil Case never matches.
type Clause[I, O any] struct {
	Case  func(I) bool
	Value O
}

// ClauseList is an ordered set of predicate clauses. Earlier clauses win.
type ClauseList[I, O any] []Clause[I, O]

// Definition holds exactly one shape of clauses.
// The zero Definition holds none and never matches.
type Definition[I, O any] struct {
	shape   Shape
	keys    KeyMapping[O]
	clauses ClauseList[I, O]
}

// Keyed returns a definition matching inputs of type I against keys.
func Keyed[I, O any](keys KeyMapping[O]) Definition[I, O] {
	if len(keys) == 0 {
		return Definition[I, O]{}
	}
	return Definition[I, O]{shape: ShapeKeyed, keys: keys}
}

// Listed returns a definition matching inputs against predicates.
func Listed[I, O any](clauses ClauseList[I, O]) Definition[I, O] {
	if len(clauses) == 0 {
		return Definition[I, O]{}
	}
	return Definition[I, O]{shape: ShapeListed, clauses: clauses}
}

func (d Definition[I, O]) Shape() Shape {
	return d.shape
}

// match returns the selected value and the position of the clause that
// selected it.
func (d Definition[I, O]) match(variable I) (O, int, bool) {
	switch d.shape {
	case ShapeKeyed:
		return d.keys.match(variable)
	case ShapeListed:
		return d.clauses.match(variable)
	default:
		var zero O
		return zero, -1, false
	}
}

func (m KeyMapping[O]) match(variable any) (O, int, bool) {
	var zero O
	k, ok := loose.Canonical(variable)
	if !ok {
		return zero, -1, false
	}
	for i, e := range m {
		if k.Matches(e.Key) {
			return e.Value, i, true
		}
	}
	return zero, -1, false
}

func (l ClauseList[I, O]) match(variable I) (O, int, bool) {
	for i, c := range l {
		if c.Case != nil && c.Case(variable) {
			return c.Value, i, true
		}
	}
	var zero O
	return zero, -1, false
}

// FromMap builds a KeyMapping from a Go map.
//
// Maps carry no insertion order, so entries are ordered the way an object
// enumerates its own keys: array-index keys ("0", "1", ...) first in
// ascending numeric order, then every other key in lexicographic order.
func FromMap[O any](m map[string]O) KeyMapping[O] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aIsIndex := arrayIndex(keys[i])
		b, bIsIndex := arrayIndex(keys[j])
		switch {
		case aIsIndex && bIsIndex:
			return a < b
		case aIsIndex != bIsIndex:
			return aIsIndex
		default:
			return keys[i] < keys[j]
		}
	})

	mapping := make(KeyMapping[O], len(keys))
	for i, k := range keys {
		mapping[i] = Entry[O]{Key: k, Value: m[k]}
	}
	return mapping
}

// arrayIndex reports whether key is the canonical text of an array index.
func arrayIndex(key string) (uint64, bool) {
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	if strconv.FormatUint(n, 10) != key {
		return 0, false
	}
	return n, true
}
