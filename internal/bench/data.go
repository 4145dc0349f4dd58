// Package bench holds the benchmark data set shared by the Go benchmarks
// and the `clsx bench` command, plus the first generation of the resolver
// kept as a reference.
package bench

import (
	"math"

	"github.com/vangoframework/clsx/pkg/clsx"
)

type sym = clsx.Symbol

// Scenario is one named argument list.
type Scenario struct {
	Name string
	Args []any
}

var (
	// SingleString is the most common real-world call.
	SingleString = "btn btn-primary"

	// Strings is a list of plain class names.
	Strings = []string{"btn", "btn-primary", "active", "hover:bg-blue-500"}

	// Hash is a simple mapping with symbol keys.
	Hash = clsx.Map{{sym("foo"), true}, {sym("bar"), false}, {sym("baz"), 1}}

	// Mixed combines a base string, a mapping and a sequence.
	Mixed = []any{
		"base",
		clsx.Map{{sym("active"), true}, {sym("disabled"), false}},
		[]string{"extra", "classes"},
	}

	// Complex nests sequences and mappings, including mappings as keys.
	Complex = complexArgs()
)

func complexArgs() []any {
	z := clsx.Map{{sym("z"), true}}
	zy := clsx.Map{{z, true}, {sym("y"), true}}
	zyx := clsx.Map{{zy, true}, {clsx.Map{{sym("x"), 1}}, 2}}

	return []any{
		[]any{[]any{[]any{[]any{"a"}, "b"}}},
		clsx.Map{{sym("a"), 1}, {sym("b"), 2}},
		[]any{1, 2, 3, 4},
		clsx.Map{{[]any{1, 2, clsx.Map{{[]string{"foo", "bar"}, true}}}, true}},
		[]any{
			clsx.Map{{sym("fuz"), 1}},
			clsx.Map{},
			clsx.Map{},
			clsx.Map{{sym("baz"), "a"}},
			clsx.Map{{sym("bez"), nil}, {sym("bat"), math.Inf(1)}},
		},
		clsx.Map{{clsx.Map{{zyx, true}}, true}},
	}
}

// Scenarios returns the benchmark scenarios in reporting order.
func Scenarios() []Scenario {
	multiple := make([]any, len(Strings))
	for i, s := range Strings {
		multiple[i] = s
	}

	return []Scenario{
		{Name: "single string", Args: []any{SingleString}},
		{Name: "string array", Args: []any{Strings}},
		{Name: "multiple strings", Args: multiple},
		{Name: "hash", Args: []any{Hash}},
		{Name: "mixed", Args: Mixed},
		{Name: "complex", Args: Complex},
	}
}
