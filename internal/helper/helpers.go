package helper

// FieldOf reads record[name] as a T.
// ok is false when the field is missing or holds something other than a T.
func FieldOf[T any](record map[string]any, name string) (res T, ok bool) {
	var raw any
	if raw, ok = record[name]; ok {
		res, ok = raw.(T)
	}
	return
}
