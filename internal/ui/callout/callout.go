// Package callout composes the titled, colored boxes used to highlight notes
// and warnings inside documentation pages.
package callout

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/ui/icon"
)

type entry struct {
	style core.StyleBundle
	icon  icon.Spec
}

var lightbulb = icon.Spec{Drawable: core.DrawableLightbulb, Color: core.ColorBlue}

var variants = core.MustRegistry("callout variants", core.Variants(), map[core.Variant]entry{
	core.VariantNote: {
		style: core.StyleBundle{
			Container: "bg-sky-50 dark:bg-slate-800/60 dark:ring-1 dark:ring-slate-300/10",
			Title:     "text-sky-900 dark:text-sky-400",
			Body:      "text-sky-800 [--tw-prose-background:var(--color-sky-50)] prose-a:text-sky-900 prose-code:text-sky-900 dark:text-slate-300 dark:prose-code:text-slate-300",
		},
		icon: lightbulb,
	},
	core.VariantWarning: {
		style: core.StyleBundle{
			Container: "bg-amber-50 dark:bg-slate-800/60 dark:ring-1 dark:ring-slate-300/10",
			Title:     "text-amber-900 dark:text-amber-500",
			Body:      "text-amber-800 [--tw-prose-underline:var(--color-amber-400)] [--tw-prose-background:var(--color-amber-50)] prose-a:text-amber-900 prose-code:text-amber-900 dark:text-slate-300 dark:[--tw-prose-underline:var(--color-sky-700)] dark:prose-code:text-slate-300",
		},
		icon: icon.Spec{Drawable: core.DrawableWarning, Color: core.ColorAmber},
	},
	core.VariantInfo: {
		style: core.StyleBundle{
			Container: "bg-blue-50 dark:bg-slate-800/60 dark:ring-1 dark:ring-slate-300/10",
			Title:     "text-blue-900 dark:text-blue-400",
			Body:      "text-blue-800 [--tw-prose-background:var(--color-blue-50)] prose-a:text-blue-900 prose-code:text-blue-900 dark:text-slate-300 dark:prose-code:text-slate-300",
		},
		icon: lightbulb,
	},
	core.VariantSuccess: {
		style: core.StyleBundle{
			Container: "bg-green-50 dark:bg-slate-800/60 dark:ring-1 dark:ring-slate-300/10",
			Title:     "text-green-900 dark:text-green-400",
			Body:      "text-green-800 [--tw-prose-background:var(--color-green-50)] prose-a:text-green-900 prose-code:text-green-900 dark:text-slate-300 dark:prose-code:text-slate-300",
		},
		icon: lightbulb,
	},
	core.VariantTip: {
		style: core.StyleBundle{
			Container: "bg-purple-50 dark:bg-slate-800/60 dark:ring-1 dark:ring-slate-300/10",
			Title:     "text-purple-900 dark:text-purple-400",
			Body:      "text-purple-800 [--tw-prose-background:var(--color-purple-50)] prose-a:text-purple-900 prose-code:text-purple-900 dark:text-slate-300 dark:prose-code:text-slate-300",
		},
		icon: lightbulb,
	},
})

func StyleOf(v core.Variant) core.StyleBundle {
	return variants.Lookup(v).style
}

func IconOf(v core.Variant) icon.Spec {
	return variants.Lookup(v).icon
}

// Callout is the structural description of a themed box. It holds no
// identity token; one is drawn from the session when it is rendered.
type Callout struct {
	Variant core.Variant
	Style   core.StyleBundle
	Icon    icon.Spec
	Title   string
	Body    g.Node
}

func Compose(v core.Variant, title string, body g.Node) Callout {
	e := variants.Lookup(v)
	return Callout{
		Variant: v,
		Style:   e.style,
		Icon:    e.icon,
		Title:   title,
		Body:    body,
	}
}

// Note composes a callout in the default variant.
func Note(title string, body g.Node) Callout {
	return Compose(core.VariantNote, title, body)
}

func (c Callout) Render(ids core.IDSource) g.Node {
	return h.Div(
		h.Class(core.ClassNames("my-8 flex rounded-3xl p-6", c.Style.Container)),
		c.Icon.Render(ids.Next(), h.Class("h-8 w-8 flex-none")),
		h.Div(
			h.Class("ml-4 flex-auto"),
			h.P(
				h.Class(core.ClassNames("not-prose font-display text-xl", c.Style.Title)),
				g.Text(c.Title),
			),
			h.Div(
				h.Class(core.ClassNames("prose mt-2.5", c.Style.Body)),
				c.Body,
			),
		),
	)
}
