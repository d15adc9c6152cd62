package layout

import (
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrorPage is the standalone page shown when a request cannot be served.
// The underlying message is only included in dev mode.
func ErrorPage(status int, message string, isDev bool) g.Node {
	text := http.StatusText(status)
	if text == "" {
		text = "Error"
	}

	return document(text, "",
		h.Main(h.Class("mx-auto max-w-3xl px-4 py-16"),
			h.P(h.Class("font-display text-sm font-medium text-slate-500"), g.Text(strconv.Itoa(status))),
			h.H1(h.Class("mt-3 font-display text-3xl tracking-tight text-slate-900 dark:text-white"), g.Text(text)),
			g.If(isDev && message != "", h.Pre(h.Class("mt-6 overflow-x-auto rounded-lg bg-slate-100 p-4 text-sm"), g.Text(message))),
			g.If(!isDev || message == "", h.P(h.Class("mt-6 text-slate-500"), g.Text(errorHint(status)))),
			h.A(h.Href("/"), h.Class("mt-8 inline-block text-sm font-medium text-sky-500"), g.Text("Go back home")),
		),
	)
}

func errorHint(status int) string {
	if status == http.StatusNotFound {
		return "Sorry, we couldn't find the page you're looking for."
	}
	return "An error occurred while processing your request."
}
