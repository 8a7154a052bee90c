// Package loose implements the coercive equality used by keyed switchers.
//
// A keyed switcher stores its keys as text. An input value is compared
// against a key the way a dynamically typed language compares a value with
// a property name using loose equality:
//
//   - strings (and fmt.Stringer values) compare as exact, case-sensitive text;
//   - numbers and booleans compare numerically against the key converted
//     with ToNumber, so 1 equals "1", "01" and "1.0";
//   - nil and every other type never match.
//
// "Cat" does not equal "cat": loose equality coerces types, it does not fold case.
package loose
