package bench

import (
	"strings"

	"github.com/vangoframework/clsx/pkg/clsx"
)

// Legacy resolves args the way the first generation of the resolver did:
// every sequence is flattened up front, mapping keys are deferred to the
// end of the whole call rather than of their own level, and strings are
// not split into tokens. It is kept for benchmarks and differential tests.
func Legacy(args ...any) (string, bool) {
	converted := make([]clsx.Arg, len(args))
	for i, v := range args {
		converted[i] = clsx.Of(v)
	}

	names := legacyCollect(converted)

	seen := make(map[string]struct{}, len(names))
	unique := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}

	if len(unique) == 0 {
		return "", false
	}
	return strings.Join(unique, " "), true
}

func legacyCollect(args []clsx.Arg) []string {
	var (
		result []string
		keys   []clsx.Arg
	)

	for _, a := range flatten(args, nil) {
		switch a.Kind() {
		case clsx.KindAbsent, clsx.KindBool, clsx.KindCallable:
			continue
		case clsx.KindMapping:
			for _, e := range a.Entries() {
				if e.Value.Truthy() {
					keys = append(keys, e.Key)
				}
			}
			continue
		}
		if text := a.Text(); text != "" {
			result = append(result, text)
		}
	}

	if len(keys) == 0 {
		return result
	}
	return append(result, legacyCollect(keys)...)
}

func flatten(args []clsx.Arg, into []clsx.Arg) []clsx.Arg {
	for _, a := range args {
		if a.Kind() == clsx.KindSequence {
			into = flatten(a.Elems(), into)
			continue
		}
		into = append(into, a)
	}
	return into
}
