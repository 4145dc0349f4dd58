package ui

import "github.com/a-h/templ"

type LabelConfig struct {
	BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(text string, opts ...LabelOption) templ.Component {
	c := &LabelConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.For != "" {
		if c.Attrs == nil {
			c.Attrs = templ.Attributes{}
		}
		c.Attrs["for"] = c.For
	}
	c.Children = append([]templ.Component{Text(text)}, c.Children...)

	finalClass := classes("text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70", &c.BaseConfig)
	return element("label", finalClass, &c.BaseConfig)
}
