// Package clsx builds class attribute values from conditional arguments.
//
// Arguments may be strings, symbols, numbers, booleans, nested sequences
// and ordered mappings whose keys are kept when their value is truthy:
//
//	clsx.Cn("btn", clsx.Map{{"btn-active", active}})    // "btn btn-active"
//	clsx.Cn("foo", "bar", "foo")                          // "foo bar"
//	clsx.Cn([]any{"a", []any{"b", []any{"", "c"}}})       // "a b c"
//	clsx.Cn(nil, false, "", []string{})                   // ""
//
// Falsy arguments (nil and false) and booleans are dropped, strings are
// split on whitespace, and every class name appears once, at its first
// position. Keys of a mapping are resolved after the other arguments at
// the same nesting level:
//
//	clsx.Cn("a", clsx.Map{{"b", true}}, "c")              // "a c b"
//
// Resolution is pure and safe for concurrent use.
package clsx
