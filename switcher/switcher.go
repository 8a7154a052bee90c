package switcher

// Switch returns the value of the first clause of def matching variable.
// Without a match it returns the default set with WithDefault, or the zero
// value and false when no default was given.
func Switch[I, O any](variable I, def Definition[I, O], opts ...Option[O]) (O, bool) {
	if v, _, ok := def.match(variable); ok {
		return v, true
	}
	return newOptions(opts).fallback()
}

// Keys switches variable over a key mapping.
func Keys[I, O any](variable I, keys KeyMapping[O], opts ...Option[O]) (O, bool) {
	return Switch(variable, Keyed[I](keys), opts...)
}

// Cases switches variable over a clause list.
func Cases[I, O any](variable I, clauses ClauseList[I, O], opts ...Option[O]) (O, bool) {
	return Switch(variable, Listed(clauses), opts...)
}
