package switcher

import (
	"reflect"

	"github.com/on-the-ground/switcher_go/internal/helper"
)

// Detect resolves the shape of an untyped definition.
//
// Keyed shapes: any map with string keys, and any slice of structs with a
// string Key field and a Value field (KeyMapping[O], []Entry[O]).
// Listed shapes: any slice of structs with a Case func field and a Value
// field (ClauseList[I, O], []Clause[I, O]), and slices of records
// ({"case": predicate, "value": v}) given as []map[string]any or []any.
// A record predicate is a func(any) bool or a func(string) bool; records
// without one are kept and never match. A typed Case only sees inputs
// assignable to its parameter and never matches others. Anything else,
// nil included, has no shape.
func Detect(def any) Definition[any, any] {
	switch d := def.(type) {
	case nil:
		return Definition[any, any]{}
	case Definition[any, any]:
		return d
	case KeyMapping[any]:
		return Keyed[any](d)
	case []Entry[any]:
		return Keyed[any](KeyMapping[any](d))
	case map[string]any:
		return Keyed[any](FromMap(d))
	case ClauseList[any, any]:
		return Listed(d)
	case []Clause[any, any]:
		return Listed(ClauseList[any, any](d))
	case []map[string]any:
		clauses := make(ClauseList[any, any], len(d))
		for i, record := range d {
			clauses[i] = clauseOf(record)
		}
		return Listed(clauses)
	case []any:
		clauses := make(ClauseList[any, any], len(d))
		for i, elem := range d {
			switch e := elem.(type) {
			case Clause[any, any]:
				clauses[i] = e
			case map[string]any:
				clauses[i] = clauseOf(e)
			}
		}
		return Listed(clauses)
	}

	rv := reflect.ValueOf(def)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			return Keyed[any](FromMap(m))
		}
	case reflect.Slice:
		elem := rv.Type().Elem()
		if elem.Kind() != reflect.Struct {
			break
		}
		if f, ok := elem.FieldByName("Value"); !ok || !f.IsExported() {
			break
		}
		if f, ok := elem.FieldByName("Key"); ok && f.IsExported() && f.Type.Kind() == reflect.String {
			keys := make(KeyMapping[any], rv.Len())
			for i := range keys {
				e := rv.Index(i)
				keys[i] = Entry[any]{
					Key:   e.FieldByName("Key").String(),
					Value: e.FieldByName("Value").Interface(),
				}
			}
			return Keyed[any](keys)
		}
		if f, ok := elem.FieldByName("Case"); ok && f.IsExported() && f.Type.Kind() == reflect.Func {
			clauses := make(ClauseList[any, any], rv.Len())
			for i := range clauses {
				e := rv.Index(i)
				clauses[i] = Clause[any, any]{
					Case:  predicateOf(e.FieldByName("Case")),
					Value: e.FieldByName("Value").Interface(),
				}
			}
			return Listed(clauses)
		}
	}
	return Definition[any, any]{}
}

// predicateOf adapts a typed func(T) bool. It returns nil for nil funcs and
// other signatures.
func predicateOf(fn reflect.Value) func(any) bool {
	t := fn.Type()
	if fn.IsNil() || t.IsVariadic() || t.NumIn() != 1 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		return nil
	}
	in := t.In(0)
	return func(v any) bool {
		arg := reflect.ValueOf(v)
		switch {
		case !arg.IsValid():
			switch in.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				arg = reflect.Zero(in)
			default:
				return false
			}
		case !arg.Type().AssignableTo(in):
			return false
		}
		return fn.Call([]reflect.Value{arg})[0].Bool()
	}
}

func clauseOf(record map[string]any) Clause[any, any] {
	c := Clause[any, any]{Value: record["value"]}
	if fn, ok := helper.FieldOf[func(any) bool](record, "case"); ok {
		c.Case = fn
	} else if fn, ok := helper.FieldOf[func(string) bool](record, "case"); ok {
		c.Case = func(v any) bool {
			s, ok := v.(string)
			return ok && fn(s)
		}
	}
	return c
}

// SwitchAny is Switch for definitions whose shape is only known at run time.
func SwitchAny(variable any, def any, opts ...Option[any]) (any, bool) {
	return Switch(variable, Detect(def), opts...)
}
