package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/clsx/pkg/clsx"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestButton(t *testing.T) {
	html := render(t, Button("Save", Variant(ButtonVariantPrimary), Class[*ButtonConfig]("my-class")))

	assert.True(t, strings.HasPrefix(html, "<button class=\""))
	assert.True(t, strings.HasSuffix(html, ">Save</button>"))
	assert.Contains(t, html, "bg-primary")
	assert.Contains(t, html, "my-class")
	assert.Contains(t, html, `type="button"`)
	assert.NotContains(t, html, " disabled")
}

func TestButtonDisabled(t *testing.T) {
	html := render(t, Button("Save", Disabled(true)))
	assert.Contains(t, html, "pointer-events-none opacity-50")
	assert.Contains(t, html, ` disabled`)
}

func TestButtonClass(t *testing.T) {
	class := ButtonClass(Size(ButtonSizeSm), Variant(ButtonVariantGhost))

	assert.True(t, strings.HasPrefix(class, "inline-flex items-center"))
	assert.Contains(t, class, "hover:bg-accent hover:text-accent-foreground")
	assert.Contains(t, class, "h-9 rounded-md px-3")
	assert.NotContains(t, class, "bg-primary")
	// rounded-md appears in both the base and the size classes
	assert.Equal(t, 1, strings.Count(class, "rounded-md"))
}

func TestButtonConditionalClasses(t *testing.T) {
	class := ButtonClass(
		Class[*ButtonConfig](clsx.Map{{"is-loading", true}, {"is-idle", false}}),
		Class[*ButtonConfig](templ.KV("is-wide", true)),
	)
	assert.True(t, strings.HasSuffix(class, "is-loading is-wide"))
	assert.NotContains(t, class, "is-idle")
}

func TestButtonEscapes(t *testing.T) {
	html := render(t, Button(`<b>"x"</b>`, Attr[*ButtonConfig]("title", `a"b`)))
	assert.Contains(t, html, "&lt;b&gt;")
	assert.Contains(t, html, `title="a&#34;b"`)
}

func TestAttrIgnoresClass(t *testing.T) {
	html := render(t, Button("x", Attr[*ButtonConfig]("class", "nope")))
	assert.NotContains(t, html, "nope")
}

func TestLabel(t *testing.T) {
	html := render(t, Label("Email", LabelFor("my-id"), Class[*LabelConfig]("text-red-500")))

	assert.True(t, strings.HasPrefix(html, "<label "))
	assert.Contains(t, html, `for="my-id"`)
	assert.Contains(t, html, "text-red-500")
	assert.True(t, strings.HasSuffix(html, ">Email</label>"))
}

func TestCard(t *testing.T) {
	card := Card(
		Class[*CardConfig]("w-[350px]"),
		Child[*CardConfig](
			CardHeader(Child[*CardHeaderConfig](CardTitle(Child[*CardTitleConfig](Text("Title"))))),
			CardContent(Child[*CardContentConfig](Text("Body"))),
		),
	)
	html := render(t, card)

	assert.True(t, strings.HasPrefix(html, `<div class="rounded-lg border bg-card text-card-foreground shadow-sm w-[350px]">`))
	assert.Contains(t, html, `<h3 class="text-2xl font-semibold leading-none tracking-tight">Title</h3>`)
	assert.Contains(t, html, `<div class="p-6 pt-0">Body</div>`)
}

func TestCardDuplicateUserClass(t *testing.T) {
	html := render(t, CardContent(Class[*CardContentConfig]("p-6 extra")))
	assert.Contains(t, html, `class="p-6 pt-0 extra"`)
}

func TestBooleanAttributes(t *testing.T) {
	html := render(t, Button("x",
		Attr[*ButtonConfig]("hidden", false),
		Attr[*ButtonConfig]("autofocus", true),
		Attr[*ButtonConfig]("aria-label", "close"),
	))

	assert.NotContains(t, html, "hidden")
	assert.Contains(t, html, " autofocus")
	assert.Contains(t, html, `aria-label="close"`)
	assert.True(t, strings.HasPrefix(html, `<button class="`))
}
