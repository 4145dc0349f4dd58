package clsx

import "math"

// Kind identifies the variant held by an Arg.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindNumber
	KindString
	KindSymbol
	KindSequence
	KindMapping
	KindCallable
	KindOther

	kindCount // sentinel, keep last
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindCallable:
		return "callable"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
)

// Arg is a single class-name argument. The zero Arg is absent.
//
// Only the fields belonging to the Arg's kind are meaningful.
type Arg struct {
	kind Kind

	// Scalars
	boolVal bool
	num     numKind
	bits    uint64 // int64, uint64 or float64 bits depending on num
	strVal  string

	// Containers
	seqVal []Arg
	mapVal []Entry
	opaque any // Callable and Other payload
}

// Entry is one key/condition pair of a Mapping. The key is itself an
// argument and contributes only when Value is truthy.
type Entry struct {
	Key   Arg
	Value Arg
}

// ============================================================
// Constructors
// ============================================================

// Nil returns the absent argument.
func Nil() Arg {
	return Arg{}
}

// Bool creates a boolean argument. Booleans never produce a class name.
func Bool(b bool) Arg {
	return Arg{kind: KindBool, boolVal: b}
}

// Int creates a signed numeric argument.
func Int(n int64) Arg {
	return Arg{kind: KindNumber, num: numInt, bits: uint64(n)}
}

// Uint creates an unsigned numeric argument.
func Uint(n uint64) Arg {
	return Arg{kind: KindNumber, num: numUint, bits: n}
}

// Float creates a floating point argument.
func Float(f float64) Arg {
	return Arg{kind: KindNumber, num: numFloat, bits: math.Float64bits(f)}
}

// Str creates a string argument. It may contain several
// whitespace-separated class names.
func Str(s string) Arg {
	return Arg{kind: KindString, strVal: s}
}

// Sym creates a symbol argument. Symbols resolve exactly like strings
// but are a distinct kind.
func Sym(s string) Arg {
	return Arg{kind: KindSymbol, strVal: s}
}

// Seq creates a sequence argument.
func Seq(args ...Arg) Arg {
	return Arg{kind: KindSequence, seqVal: args}
}

// Mapping creates an ordered mapping argument.
func Mapping(entries ...Entry) Arg {
	return Arg{kind: KindMapping, mapVal: entries}
}

// On is shorthand for a mapping entry with a boolean condition.
func On(key Arg, cond bool) Entry {
	return Entry{Key: key, Value: Bool(cond)}
}

// Func wraps a callable value. Callables never produce a class name.
func Func(f any) Arg {
	return Arg{kind: KindCallable, opaque: f}
}

// Other wraps an arbitrary value that resolves through its string form.
func Other(v any) Arg {
	return Arg{kind: KindOther, opaque: v}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the variant of a.
func (a Arg) Kind() Kind {
	return a.kind
}

// IsAbsent reports whether a is the absent argument.
func (a Arg) IsAbsent() bool {
	return a.kind == KindAbsent
}

// Truthy reports whether a passes a mapping condition. Only absent and
// false are falsy; 0, "", empty sequences and mappings are truthy.
func (a Arg) Truthy() bool {
	switch a.kind {
	case KindAbsent:
		return false
	case KindBool:
		return a.boolVal
	default:
		return true
	}
}

// Len returns the number of elements of a sequence or entries of a
// mapping, and 0 for every other kind.
func (a Arg) Len() int {
	switch a.kind {
	case KindSequence:
		return len(a.seqVal)
	case KindMapping:
		return len(a.mapVal)
	default:
		return 0
	}
}

// Elems returns the elements of a sequence.
func (a Arg) Elems() []Arg {
	if a.kind != KindSequence {
		return nil
	}
	return a.seqVal
}

// Entries returns the entries of a mapping.
func (a Arg) Entries() []Entry {
	if a.kind != KindMapping {
		return nil
	}
	return a.mapVal
}

// Text returns the string form of a scalar: the value of a string or
// symbol, the canonical form of a number, the stringified Other value.
// Containers, booleans, callables and absent arguments have no text.
func (a Arg) Text() string {
	switch a.kind {
	case KindString, KindSymbol:
		return a.strVal
	case KindNumber:
		return a.numberString()
	case KindOther:
		return a.otherString()
	default:
		return ""
	}
}

// isSimpleKey reports whether a mapping key can be appended without a
// nested traversal.
func (a Arg) isSimpleKey() bool {
	return a.kind == KindString || a.kind == KindSymbol
}
