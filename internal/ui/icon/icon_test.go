package icon

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/core"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func TestRenderInjectsPalette(t *testing.T) {
	tests := []struct {
		color core.Color
		style string
	}{
		{core.ColorBlue, `style="--icon-foreground:var(--color-slate-900);--icon-background:var(--color-white)"`},
		{core.ColorAmber, `style="--icon-foreground:var(--color-amber-900);--icon-background:var(--color-amber-100)"`},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			out := render(t, Render(core.DrawableLightbulb, tt.color, "i"))

			if !strings.Contains(out, tt.style) {
				t.Errorf("output missing %s\n%s", tt.style, out)
			}
			if n := strings.Count(out, "--icon-foreground:"); n != 1 {
				t.Errorf("foreground declared %d times, want 1", n)
			}
			if n := strings.Count(out, "--icon-background:"); n != 1 {
				t.Errorf("background declared %d times, want 1", n)
			}
			for _, stop := range PaletteOf(tt.color).Stops {
				if !strings.Contains(out, `stop-color="`+stop.Color+`"`) {
					t.Errorf("gradient stop %s not rendered", stop.Color)
				}
			}
		})
	}
}

func TestRenderScopesGradientsByID(t *testing.T) {
	for _, d := range core.Drawables() {
		t.Run(d.String(), func(t *testing.T) {
			out := render(t, Render(d, core.ColorBlue, "abc"))

			for _, want := range []string{
				`id="abc-gradient"`,
				`id="abc-gradient-dark"`,
				`url(#abc-gradient)`,
				`url(#abc-gradient-dark)`,
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %s", want)
				}
			}

			other := render(t, Render(d, core.ColorBlue, "xyz"))
			if strings.ReplaceAll(other, "xyz", "abc") != out {
				t.Error("outputs for different ids differ beyond the id")
			}
		})
	}
}

func TestRenderWrapper(t *testing.T) {
	out := render(t, Render(core.DrawableWarning, core.ColorAmber, "w", h.Class("h-8 w-8 flex-none"), g.Attr("data-test", "icon")))

	if !strings.HasPrefix(out, `<svg aria-hidden="true" viewBox="0 0 32 32" fill="none"`) {
		t.Errorf("unexpected wrapper: %s", out)
	}
	if !strings.Contains(out, `class="h-8 w-8 flex-none"`) {
		t.Error("class attribute was not passed through")
	}
	if !strings.Contains(out, `data-test="icon"`) {
		t.Error("extra attribute was not passed through")
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Error("svg not closed")
	}
}

func TestRenderMergesStyle(t *testing.T) {
	tests := []struct {
		name  string
		attrs []g.Node
		want  string
	}{
		{"none", nil, `style="--icon-foreground:var(--color-amber-900);--icon-background:var(--color-amber-100)"`},
		{"one", []g.Node{h.Style("width:2rem")}, `style="--icon-foreground:var(--color-amber-900);--icon-background:var(--color-amber-100);width:2rem"`},
		{"two", []g.Node{h.Style("width:2rem;"), g.Attr("style", "opacity:.5")}, `;width:2rem;opacity:.5"`},
		{"empty", []g.Node{h.Style("")}, `--icon-background:var(--color-amber-100)"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := append([]g.Node{h.Class("h-8")}, tt.attrs...)
			out := render(t, Render(core.DrawableWarning, core.ColorAmber, "m", attrs...))
			open := out[:strings.Index(out, ">")]

			if n := strings.Count(open, " style="); n != 1 {
				t.Errorf("<svg> has %d style attributes, want 1: %s", n, open)
			}
			if !strings.Contains(open, tt.want) {
				t.Errorf("<svg> missing %s: %s", tt.want, open)
			}
			if !strings.Contains(open, `class="h-8"`) {
				t.Errorf("class attribute was not passed through: %s", open)
			}
		})
	}
}

func TestRenderDefaultIsBlue(t *testing.T) {
	for _, d := range core.Drawables() {
		got := render(t, RenderDefault(d, "id"))
		want := render(t, Render(d, core.ColorBlue, "id"))
		if got != want {
			t.Errorf("RenderDefault(%v) differs from Render(%v, blue)", d, d)
		}
	}

	var spec Spec
	if spec.Color != core.ColorBlue {
		t.Errorf("zero Spec color = %v, want blue", spec.Color)
	}
}

func TestDrawablesAreDistinct(t *testing.T) {
	seen := map[string]core.Drawable{}
	for _, d := range core.Drawables() {
		out := render(t, Render(d, core.ColorBlue, "same"))
		if prev, ok := seen[out]; ok {
			t.Errorf("%v renders the same markup as %v", d, prev)
		}
		seen[out] = d
	}
}

func TestSpecRender(t *testing.T) {
	spec := Spec{Drawable: core.DrawableWarning, Color: core.ColorAmber}
	if render(t, spec.Render("s")) != render(t, Render(core.DrawableWarning, core.ColorAmber, "s")) {
		t.Error("Spec.Render() differs from Render()")
	}
}

func TestRenderSnapshot(t *testing.T) {
	for _, d := range core.Drawables() {
		t.Run(d.String(), func(t *testing.T) {
			snaps.MatchSnapshot(t, render(t, Render(d, core.ColorBlue, "snap")))
		})
	}
}
