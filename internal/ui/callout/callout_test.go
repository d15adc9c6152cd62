package callout

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/ui/icon"
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

func TestComposeSelectsVariantEntry(t *testing.T) {
	tests := []struct {
		variant   core.Variant
		container string
		title     string
		drawable  core.Drawable
		color     core.Color
	}{
		{core.VariantNote, "bg-sky-50", "text-sky-900", core.DrawableLightbulb, core.ColorBlue},
		{core.VariantWarning, "bg-amber-50", "text-amber-900", core.DrawableWarning, core.ColorAmber},
		{core.VariantInfo, "bg-blue-50", "text-blue-900", core.DrawableLightbulb, core.ColorBlue},
		{core.VariantSuccess, "bg-green-50", "text-green-900", core.DrawableLightbulb, core.ColorBlue},
		{core.VariantTip, "bg-purple-50", "text-purple-900", core.DrawableLightbulb, core.ColorBlue},
	}

	if len(tests) != len(core.Variants()) {
		t.Fatalf("table covers %d variants, enumeration has %d", len(tests), len(core.Variants()))
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			c := Compose(tt.variant, "Title", nil)

			if c.Style != StyleOf(tt.variant) {
				t.Errorf("Style = %+v, want StyleOf(%v)", c.Style, tt.variant)
			}
			if !strings.HasPrefix(c.Style.Container, tt.container+" ") {
				t.Errorf("Container = %q, want prefix %q", c.Style.Container, tt.container)
			}
			if !strings.HasPrefix(c.Style.Title, tt.title+" ") {
				t.Errorf("Title style = %q, want prefix %q", c.Style.Title, tt.title)
			}
			want := icon.Spec{Drawable: tt.drawable, Color: tt.color}
			if c.Icon != want || IconOf(tt.variant) != want {
				t.Errorf("Icon = %+v, want %+v", c.Icon, want)
			}
			if c.Variant != tt.variant {
				t.Errorf("Variant = %v, want %v", c.Variant, tt.variant)
			}
		})
	}
}

func TestStyleBundlesAreDistinct(t *testing.T) {
	seen := map[core.StyleBundle]core.Variant{}
	for _, v := range core.Variants() {
		s := StyleOf(v)
		if prev, ok := seen[s]; ok {
			t.Errorf("%v shares its style bundle with %v", v, prev)
		}
		seen[s] = v
	}
}

func TestComposeIsPure(t *testing.T) {
	a := Compose(core.VariantTip, "Same", g.Text("body"))
	b := Compose(core.VariantTip, "Same", g.Text("body"))

	if a.Variant != b.Variant || a.Style != b.Style || a.Icon != b.Icon || a.Title != b.Title {
		t.Errorf("Compose() returned different descriptions: %+v vs %+v", a, b)
	}

	first := render(t, a.Render(core.NewSequence("x")))
	second := render(t, b.Render(core.NewSequence("x")))
	if first != second {
		t.Errorf("equal inputs rendered differently:\n%s\n%s", first, second)
	}

	third := render(t, b.Render(core.NewSequence("y")))
	if strings.ReplaceAll(third, "y-1", "x-1") != first {
		t.Error("renders differ beyond the identity token")
	}
}

func TestDefaultVariantIsNote(t *testing.T) {
	var zero core.Variant

	want := render(t, Compose(core.VariantNote, "T", g.Text("b")).Render(core.NewSequence("d")))
	for name, c := range map[string]Callout{
		"Note":         Note("T", g.Text("b")),
		"zero variant": Compose(zero, "T", g.Text("b")),
	} {
		if got := render(t, c.Render(core.NewSequence("d"))); got != want {
			t.Errorf("%s rendered differently from note:\n%s", name, got)
		}
	}
}

var gradientID = regexp.MustCompile(`id="([^"]+)-gradient"`)

func TestRenderDrawsDistinctIdentityTokens(t *testing.T) {
	const n = 8
	ids := core.NewSession()

	var b strings.Builder
	for i := range n {
		v := core.Variants()[i%len(core.Variants())]
		if err := Compose(v, "T", nil).Render(ids).Render(&b); err != nil {
			t.Fatal(err)
		}
	}

	matches := gradientID.FindAllStringSubmatch(b.String(), -1)
	if len(matches) != n {
		t.Fatalf("found %d icons, want %d", len(matches), n)
	}
	seen := map[string]bool{}
	for _, m := range matches {
		if seen[m[1]] {
			t.Errorf("identity token %q used twice", m[1])
		}
		seen[m[1]] = true
	}
}

func TestWarningScenario(t *testing.T) {
	c := Compose(core.VariantWarning, "Be careful", g.Text("This action is destructive"))
	out := render(t, c.Render(core.NewSequence("w")))

	checks := []string{
		`<div class="my-8 flex rounded-3xl p-6 bg-amber-50 dark:bg-slate-800/60 dark:ring-1 dark:ring-slate-300/10">`,
		`<p class="not-prose font-display text-xl text-amber-900 dark:text-amber-500">Be careful</p>`,
		`dark:prose-code:text-slate-300">This action is destructive</div>`,
		`style="--icon-foreground:var(--color-amber-900);--icon-background:var(--color-amber-100)"`,
		`class="h-8 w-8 flex-none"`,
		`id="w-1-gradient"`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}

	warningIcon := render(t, icon.Render(core.DrawableWarning, core.ColorAmber, "w-1"))
	warningIcon = strings.TrimSuffix(warningIcon, "</svg>")
	shape := warningIcon[strings.Index(warningIcon, "><")+1:]
	if !strings.Contains(out, shape) {
		t.Error("callout icon is not the amber warning drawable")
	}
}

func TestTitleIsEscaped(t *testing.T) {
	out := render(t, Note("<script>", nil).Render(core.NewSequence("e")))
	if strings.Contains(out, "<script>") {
		t.Error("title was not escaped")
	}
}

func TestRenderSnapshot(t *testing.T) {
	for _, v := range core.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			c := Compose(v, "Heads up", g.Text("Callout body."))
			snaps.MatchSnapshot(t, render(t, c.Render(core.NewSequence("snap"))))
		})
	}
}
