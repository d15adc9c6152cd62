package hero

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/core"
)

// ButtonVariant is the closed set of call-to-action styles.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
)

func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{ButtonPrimary, ButtonSecondary}
}

func (v ButtonVariant) String() string {
	switch v {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "ButtonVariant(?)"
	}
}

var buttonStyles = core.MustRegistry("button variants", ButtonVariants(), map[ButtonVariant]string{
	ButtonPrimary:   "rounded-full bg-sky-300 py-2 px-4 text-sm font-semibold text-slate-900 hover:bg-sky-200 focus:outline-hidden focus-visible:outline-2 focus-visible:outline-offset-2 focus-visible:outline-sky-300/50 active:bg-sky-500",
	ButtonSecondary: "rounded-full bg-slate-800 py-2 px-4 text-sm font-medium text-white hover:bg-slate-700 focus:outline-hidden focus-visible:outline-2 focus-visible:outline-offset-2 focus-visible:outline-white/50 active:text-slate-400",
})

func Button(v ButtonVariant, href, label string, attrs ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		h.Class(buttonStyles.Lookup(v)),
		g.Group(attrs),
		g.Text(label),
	)
}
