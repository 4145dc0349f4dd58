package ui

import (
	"github.com/a-h/templ"

	"github.com/vangoframework/clsx/pkg/clsx"
)

type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

const buttonBase = "inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"

type ButtonConfig struct {
	BaseConfig
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func Disabled(d bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = d }
}

func newButtonConfig(opts []ButtonOption) *ButtonConfig {
	c := &ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ButtonClass returns the class list a Button with opts renders:
// base classes, then variant and size classes, then user classes.
func ButtonClass(opts ...ButtonOption) string {
	return buttonClass(newButtonConfig(opts))
}

func buttonClass(c *ButtonConfig) string {
	v, s := c.Variant, c.Size
	own := clsx.Cn(buttonBase, clsx.Map{
		{"bg-primary text-primary-foreground hover:bg-primary/90", v == ButtonVariantDefault || v == ButtonVariantPrimary},
		{"bg-destructive text-destructive-foreground hover:bg-destructive/90", v == ButtonVariantDestructive},
		{"border border-input bg-background hover:bg-accent hover:text-accent-foreground", v == ButtonVariantOutline},
		{"bg-secondary text-secondary-foreground hover:bg-secondary/80", v == ButtonVariantSecondary},
		{"hover:bg-accent hover:text-accent-foreground", v == ButtonVariantGhost},
		{"text-primary underline-offset-4 hover:underline", v == ButtonVariantLink},
		{"h-10 px-4 py-2", s == ButtonSizeDefault},
		{"h-9 rounded-md px-3", s == ButtonSizeSm},
		{"h-11 rounded-md px-8", s == ButtonSizeLg},
		{"h-10 w-10", s == ButtonSizeIcon},
		{"pointer-events-none opacity-50", c.Disabled},
	})
	return classes(own, &c.BaseConfig)
}

// Button renders a <button> element. Children passed with Child replace
// the label.
func Button(label string, opts ...ButtonOption) templ.Component {
	c := newButtonConfig(opts)

	attrs := templ.Attributes{"type": "button"}
	for k, v := range c.Attrs {
		attrs[k] = v
	}
	if c.Disabled {
		attrs["disabled"] = true
	}
	c.Attrs = attrs

	if len(c.Children) == 0 {
		c.Children = []templ.Component{Text(label)}
	}

	return element("button", buttonClass(c), &c.BaseConfig)
}
