package clsx

// walk visits args left to right, depth first, inserting tokens into set.
//
// Keys of truthy mapping entries are not tokens yet: they are collected
// for the level and walked, as a new argument list, once every other item
// of the level has been visited. A mapping's contribution therefore lands
// after its non-mapping siblings even when it appears before them.
func walk(args []Arg, set *tokenSet) {
	var deferred []Arg

	for i := range args {
		a := &args[i]
		switch a.kind {
		case KindAbsent, KindBool, KindCallable:
			// no token
		case KindString, KindSymbol:
			set.addString(a.strVal)
		case KindNumber:
			set.add(a.numberString())
		case KindSequence:
			walk(a.seqVal, set)
		case KindMapping:
			for _, e := range a.mapVal {
				if e.Value.Truthy() {
					deferred = append(deferred, e.Key)
				}
			}
		case KindOther:
			set.addString(a.otherString())
		}
	}

	if len(deferred) > 0 {
		walk(deferred, set)
	}
}

// general is the canonical algorithm every fast path must agree with.
func general(args []Arg) (string, bool) {
	var set tokenSet
	walk(args, &set)
	return set.join()
}
