package ui

import "github.com/a-h/templ"

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) templ.Component {
	c := &CardConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", classes("rounded-lg border bg-card text-card-foreground shadow-sm", &c.BaseConfig), &c.BaseConfig)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) templ.Component {
	c := &CardHeaderConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", classes("flex flex-col space-y-1.5 p-6", &c.BaseConfig), &c.BaseConfig)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) templ.Component {
	c := &CardTitleConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("h3", classes("text-2xl font-semibold leading-none tracking-tight", &c.BaseConfig), &c.BaseConfig)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) templ.Component {
	c := &CardContentConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", classes("p-6 pt-0", &c.BaseConfig), &c.BaseConfig)
}
