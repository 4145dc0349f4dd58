package clsx

import (
	"fmt"
	"reflect"
	"sort"
)

// Symbol is a class name that is not a plain string, the usual home for
// named constants. Any named string type is classified the same way.
type Symbol string

// Pair is one entry of a Map literal.
type Pair struct {
	Key   any
	Value any
}

// Map is an ordered mapping literal:
//
//	clsx.Map{{"active", isActive}, {"disabled", false}}
type Map []Pair

// Arg converts m to a mapping argument.
func (m Map) Arg() Arg {
	entries := make([]Entry, len(m))
	for i, p := range m {
		entries[i] = Entry{Key: Of(p.Key), Value: Of(p.Value)}
	}
	return Mapping(entries...)
}

// classNamer is satisfied by component CSS class values such as
// templ.CSSClass.
type classNamer interface {
	ClassName() string
}

// Of classifies a native Go value:
//
//   - nil, nil pointers, funcs, maps and interfaces are absent
//   - bool is Bool; integer and float kinds are Number
//   - string is String; Symbol and other named string types are Symbol
//   - slices and arrays are Sequence; Map is an ordered Mapping
//   - Go maps are Mappings visited in sorted key order
//   - non-nil funcs are Callable
//   - values with a ClassName() string method are String
//   - everything else, including fmt.Stringer and error, is Other
func Of(v any) Arg {
	switch x := v.(type) {
	case nil:
		return Arg{}
	case Arg:
		return x
	case string:
		return Str(x)
	case Symbol:
		return Sym(string(x))
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case int32:
		return Int(int64(x))
	case uint:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case Map:
		return x.Arg()
	case []Arg:
		return Seq(x...)
	case []string:
		seq := make([]Arg, len(x))
		for i, s := range x {
			seq[i] = Str(s)
		}
		return Seq(seq...)
	case []any:
		seq := make([]Arg, len(x))
		for i, e := range x {
			seq[i] = Of(e)
		}
		return Seq(seq...)
	case map[string]bool:
		if x == nil {
			return Arg{}
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			entries[i] = On(Str(k), x[k])
		}
		return Mapping(entries...)
	case classNamer:
		if isNilRef(v) {
			return Arg{}
		}
		return Str(x.ClassName())
	case fmt.Stringer, error:
		if isNilRef(v) {
			return Arg{}
		}
		return Other(x)
	}
	return ofReflect(reflect.ValueOf(v))
}

// isNilRef reports whether v holds a nil pointer, map, func, chan or
// interface behind a non-nil interface value.
func isNilRef(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func ofReflect(rv reflect.Value) Arg {
	switch rv.Kind() {
	case reflect.String:
		return Sym(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Slice, reflect.Array:
		seq := make([]Arg, rv.Len())
		for i := range seq {
			seq[i] = Of(rv.Index(i).Interface())
		}
		return Seq(seq...)
	case reflect.Map:
		if rv.IsNil() {
			return Arg{}
		}
		return ofGoMap(rv)
	case reflect.Func:
		if rv.IsNil() {
			return Arg{}
		}
		return Func(rv.Interface())
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return Arg{}
		}
	}
	return Other(rv.Interface())
}

// ofGoMap converts a Go map. Go maps have no order, so entries are sorted
// by the string form of their keys to keep the output deterministic.
func ofGoMap(rv reflect.Value) Arg {
	type keyed struct {
		sortKey string
		entry   Entry
	}
	items := make([]keyed, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		items = append(items, keyed{
			sortKey: fmt.Sprint(k),
			entry:   Entry{Key: Of(k), Value: Of(iter.Value().Interface())},
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sortKey < items[j].sortKey
	})

	entries := make([]Entry, len(items))
	for i, it := range items {
		entries[i] = it.entry
	}
	return Mapping(entries...)
}
