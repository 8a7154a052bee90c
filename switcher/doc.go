// Package switcher selects a value for an input from a set of clauses.
//
// A switch is declared in one of two shapes:
//
//   - a KeyMapping, an ordered list of textual keys and their values.
//     The input matches the first key it is loosely equal to
//     (see package loose: 1 matches "1", "Cat" does not match "cat");
//   - a ClauseList, an ordered list of predicates and their values.
//     The input matches the first clause whose predicate returns true,
//     and later predicates are never called.
//
// When nothing matches, the value given with WithDefault is returned.
// Without a default the result is the absence sentinel: the zero value of
// the output type together with false.
//
//	name, ok := switcher.Keys("cat", switcher.KeyMapping[string]{
//	    {Key: "cat", Value: "Felis catus"},
//	    {Key: "lion", Value: "Panthera leo"},
//	})
//
//	name, ok = switcher.Cases("wildcat", switcher.ClauseList[string, string]{
//	    {Case: func(s string) bool { return strings.HasPrefix(s, "wild") }, Value: "Felis silvestris"},
//	    {Case: func(s string) bool { return strings.Contains(s, "cat") }, Value: "Felis catus"},
//	}, switcher.WithDefault("Uncataloged species"))
//
// Matching is synchronous, pure and never panics on its own account:
// malformed clauses (a nil Case, an input type that cannot equal a key)
// simply do not match.
//
// For repeated use, Compile indexes a definition once and Tableize
// memoizes its decisions. Tableize is only sound when every predicate
// is pure: a memoized switch must answer like a lookup table.
//
// SwitchAny accepts definitions of unknown shape (maps, clause records)
// and detects the shape once at the boundary.
package switcher
