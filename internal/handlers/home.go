package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/vangoframework/clsx/pkg/clsx"
	"github.com/vangoframework/clsx/pkg/ui"
)

// Home renders a preview page: the class values from the query string are
// resolved, shown, and merged into a sample button.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()["class"]
	args := make([]clsx.Arg, len(values))
	userClasses := make([]any, len(values))
	for i, v := range values {
		args[i] = clsx.Str(v)
		userClasses[i] = v
	}

	class, present := h.resolve(r.Context(), args)
	result := "(no classes)"
	if present {
		result = class
	}

	page := ui.Card(
		ui.Class[*ui.CardConfig]("mx-auto max-w-xl"),
		ui.Child[*ui.CardConfig](
			ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
				ui.CardTitle(ui.Child[*ui.CardTitleConfig](ui.Text("clsx"))),
			)),
			ui.CardContent(ui.Child[*ui.CardContentConfig](
				ui.Label("Resolved", ui.LabelFor("resolved")),
				element("pre", "resolved", result),
				ui.Button("Preview", ui.Class[*ui.ButtonConfig](userClasses...)),
			)),
		),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render home", "error", err)
	}
}

// element renders <tag id="id">text</tag> with text escaped.
func element(tag, id, text string) templ.Component {
	return templ.Raw("<" + tag + ` id="` + templ.EscapeString(id) + `">` + templ.EscapeString(text) + "</" + tag + ">")
}
