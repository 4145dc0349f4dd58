// Package ui contains small templ components whose classes are merged
// with clsx.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/clsx/pkg/clsxtempl"
)

// BaseConfig is embedded in every component config.
type BaseConfig struct {
	Classes  []any // clsx arguments, merged after the component's own classes
	Attrs    templ.Attributes
	Children []templ.Component
}

// ConfigProvider lets the generic options work on any config.
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider.
type Option[T ConfigProvider] func(T)

// Class adds classes. Arguments follow clsx rules, so conditional classes
// can be passed as clsx.Map or templ.KV values.
func Class[T ConfigProvider](args ...any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, args...)
	}
}

// Attr sets a raw attribute (escape hatch). "class" is ignored; use Class.
func Attr[T ConfigProvider](name string, value any) Option[T] {
	return func(cfg T) {
		if name == "class" {
			return
		}
		base := cfg.GetBase()
		if base.Attrs == nil {
			base.Attrs = templ.Attributes{}
		}
		base.Attrs[name] = value
	}
}

// Child appends child components.
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Children = append(base.Children, nodes...)
	}
}

// Text is an escaped text node.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// element renders tag with the merged class, the base attributes and the
// base children.
func element(tag, class string, base *BaseConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderElement(ctx, w, tag, class, base.Attrs, base.Children)
	})
}

// renderElement writes <tag class="..." attrs...>children</tag>. The class
// comes first; the remaining attributes are rendered by templ.
func renderElement(ctx context.Context, w io.Writer, tag, class string, attrs templ.Attributes, children []templ.Component) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if class != "" {
		if _, err := io.WriteString(w, ` class="`+templ.EscapeString(class)+`"`); err != nil {
			return err
		}
	}
	if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range children {
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// classes merges a component's own classes with the user's. The
// component's classes come first even when the user passes mappings.
func classes(own string, base *BaseConfig) string {
	return clsxtempl.Class(append([]any{own}, base.Classes...)...)
}
