// Package clsxtempl resolves class names for templ components, accepting
// templ's own class helpers alongside everything clsx understands.
//
//	<div { clsxtempl.Attrs("card", templ.KV("card-active", active))... }>
package clsxtempl

import (
	"github.com/a-h/templ"

	"github.com/vangoframework/clsx/pkg/clsx"
)

// Arg converts v to a resolver argument. templ.KV pairs become one-entry
// mappings, templ.CSSClasses and []any become sequences (converted
// recursively) and templ.CSSClass values contribute their class name.
// Everything else is classified by clsx.Of.
func Arg(v any) clsx.Arg {
	switch x := v.(type) {
	case templ.KeyValue[string, bool]:
		return clsx.Mapping(clsx.On(clsx.Str(x.Key), x.Value))
	case templ.KeyValue[templ.CSSClass, bool]:
		return clsx.Mapping(clsx.On(Arg(x.Key), x.Value))
	case templ.KeyValue[string, any]:
		return clsx.Mapping(clsx.Entry{Key: clsx.Str(x.Key), Value: Arg(x.Value)})
	case templ.CSSClasses:
		return seq(x)
	case []any:
		return seq(x)
	case templ.CSSClass:
		return clsx.Str(x.ClassName())
	}
	return clsx.Of(v)
}

func seq(items []any) clsx.Arg {
	args := make([]clsx.Arg, len(items))
	for i, item := range items {
		args[i] = Arg(item)
	}
	return clsx.Seq(args...)
}

// Resolve converts args with Arg and resolves them.
func Resolve(args ...any) (string, bool) {
	converted := make([]clsx.Arg, len(args))
	for i, v := range args {
		converted[i] = Arg(v)
	}
	return clsx.Resolve(converted...)
}

// Class returns the resolved class list, or "" when nothing remains.
func Class(args ...any) string {
	s, _ := Resolve(args...)
	return s
}

// Attrs returns a class attribute for spreading into a templ element. It
// is empty when nothing remains, so no empty class attribute is rendered.
func Attrs(args ...any) templ.Attributes {
	s, ok := Resolve(args...)
	if !ok {
		return templ.Attributes{}
	}
	return templ.Attributes{"class": s}
}
