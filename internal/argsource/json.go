package argsource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vangoframework/clsx/pkg/clsx"
)

// DecodeJSON decodes a JSON document. Object members keep their document
// order, which decides the order of their classes.
func DecodeJSON(data []byte) ([]clsx.Arg, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalid)
	}
	doc := gjson.ParseBytes(data)
	if doc.IsArray() {
		return jsonElems(doc), nil
	}
	return []clsx.Arg{jsonArg(doc)}, nil
}

// JSONValue decodes a single JSON value. A JSON array is one sequence
// argument here.
func JSONValue(s string) (clsx.Arg, error) {
	if !gjson.Valid(s) {
		return clsx.Arg{}, fmt.Errorf("%w: malformed JSON %q", ErrInvalid, s)
	}
	return jsonArg(gjson.Parse(s)), nil
}

func jsonArg(r gjson.Result) clsx.Arg {
	switch r.Type {
	case gjson.Null:
		return clsx.Nil()
	case gjson.False:
		return clsx.Bool(false)
	case gjson.True:
		return clsx.Bool(true)
	case gjson.Number:
		return jsonNumber(r)
	case gjson.String:
		return clsx.Str(r.Str)
	}

	if r.IsArray() {
		return clsx.Seq(jsonElems(r)...)
	}

	var entries []clsx.Entry
	r.ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, clsx.Entry{Key: clsx.Str(key.Str), Value: jsonArg(value)})
		return true
	})
	return clsx.Mapping(entries...)
}

func jsonElems(r gjson.Result) []clsx.Arg {
	var args []clsx.Arg
	r.ForEach(func(_, value gjson.Result) bool {
		args = append(args, jsonArg(value))
		return true
	})
	return args
}

// jsonNumber keeps integers exact; anything with a fraction or exponent is
// a float.
func jsonNumber(r gjson.Result) clsx.Arg {
	raw := r.Raw
	if !strings.ContainsAny(raw, ".eE") {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return clsx.Int(n)
		}
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return clsx.Uint(n)
		}
	}
	return clsx.Float(r.Num)
}
