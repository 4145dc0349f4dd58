package clsx

// Resolve builds a class attribute value from args. It reports false when
// no class name remains.
//
// Single arguments and the common ("base", mapping) pair take fast paths
// that return the same result as the general walk with less allocation.
func Resolve(args ...Arg) (string, bool) {
	switch len(args) {
	case 0:
		return "", false
	case 1:
		return single(args[0])
	case 2:
		if args[0].kind == KindString && args[1].kind == KindMapping {
			return stringMapping(args[0].strVal, args[1], args)
		}
	}
	return general(args)
}

// Clsx resolves native Go values, classifying each with Of.
//
//	clsx.Clsx("btn", clsx.Map{{"btn-active", active}, {"disabled", false}})
func Clsx(args ...any) (string, bool) {
	switch len(args) {
	case 0:
		return "", false
	case 1:
		return single(Of(args[0]))
	}
	converted := make([]Arg, len(args))
	for i, v := range args {
		converted[i] = Of(v)
	}
	return Resolve(converted...)
}

// Cn is Clsx for templates: it returns "" when no class name remains.
func Cn(args ...any) string {
	s, _ := Clsx(args...)
	return s
}

func single(a Arg) (string, bool) {
	switch a.kind {
	case KindString, KindSymbol:
		return normalize(a.strVal)
	case KindNumber:
		return a.numberString(), true
	case KindSequence:
		return singleSequence(a.seqVal)
	case KindMapping:
		return singleMapping(a)
	case KindOther:
		return normalize(a.otherString())
	default:
		return "", false
	}
}

// singleSequence handles a lone sequence. Whitespace-free strings are
// already tokens and only need deduplication; anything else is walked.
func singleSequence(seq []Arg) (string, bool) {
	if len(seq) == 0 {
		return "", false
	}
	for i := range seq {
		if seq[i].kind != KindString || hasSpace(seq[i].strVal) {
			return general(seq)
		}
	}

	if len(seq) == 1 {
		s := seq[0].strVal
		return s, s != ""
	}

	var set tokenSet
	for i := range seq {
		if s := seq[i].strVal; s != "" {
			set.add(s)
		}
	}
	return set.join()
}

// singleMapping handles a lone mapping whose truthy keys are all strings
// or symbols. Keys are scanned before anything is built so that a complex
// key can hand the whole mapping to the walker.
func singleMapping(m Arg) (string, bool) {
	var (
		first  string
		truthy int
	)
	for _, e := range m.mapVal {
		if !e.Value.Truthy() {
			continue
		}
		if !e.Key.isSimpleKey() {
			return general([]Arg{m})
		}
		if truthy == 0 {
			first = e.Key.strVal
		}
		truthy++
	}

	switch truthy {
	case 0:
		return "", false
	case 1:
		return normalize(first)
	}

	var set tokenSet
	for _, e := range m.mapVal {
		if e.Value.Truthy() {
			set.addString(e.Key.strVal)
		}
	}
	return set.join()
}

// stringMapping handles resolve("base classes", mapping). The base is
// tokenized once and the simple keys of truthy entries are appended to it.
// A complex key abandons the partially built set and walks args instead.
func stringMapping(base string, m Arg, args []Arg) (string, bool) {
	if tok, _ := nextToken(base, 0); tok == "" {
		return singleMapping(m)
	}

	var set tokenSet
	seeded := false
	for _, e := range m.mapVal {
		if !e.Value.Truthy() {
			continue
		}
		if !e.Key.isSimpleKey() {
			return general(args)
		}
		if !seeded {
			set.addString(base)
			seeded = true
		}
		set.addString(e.Key.strVal)
	}

	if !seeded {
		return normalize(base)
	}
	return set.join()
}
