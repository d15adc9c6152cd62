package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant  = errors.New("unknown callout variant")
	ErrUnknownColor    = errors.New("unknown icon color")
	ErrUnknownDrawable = errors.New("unknown drawable")
)

// Variant selects the themed presentation of a callout. The zero value is
// VariantNote, which is also the default when no variant is given.
type Variant int

const (
	VariantNote Variant = iota
	VariantWarning
	VariantInfo
	VariantSuccess
	VariantTip
)

func Variants() []Variant {
	return []Variant{VariantNote, VariantWarning, VariantInfo, VariantSuccess, VariantTip}
}

func (v Variant) String() string {
	switch v {
	case VariantNote:
		return "note"
	case VariantWarning:
		return "warning"
	case VariantInfo:
		return "info"
	case VariantSuccess:
		return "success"
	case VariantTip:
		return "tip"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

func (v Variant) Valid() bool {
	return v >= VariantNote && v <= VariantTip
}

func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantNote, nil
	}
	for _, v := range Variants() {
		if v.String() == s {
			return v, nil
		}
	}
	return VariantNote, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Color selects the foreground/background pair an icon is drawn with. The
// zero value is ColorBlue.
type Color int

const (
	ColorBlue Color = iota
	ColorAmber
)

func Colors() []Color {
	return []Color{ColorBlue, ColorAmber}
}

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorAmber:
		return "amber"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

func (c Color) Valid() bool {
	return c == ColorBlue || c == ColorAmber
}

func ParseColor(s string) (Color, error) {
	if s == "" {
		return ColorBlue, nil
	}
	for _, c := range Colors() {
		if c.String() == s {
			return c, nil
		}
	}
	return ColorBlue, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Drawable names one of the fixed icon shapes.
type Drawable int

const (
	DrawableInstallation Drawable = iota
	DrawablePresets
	DrawablePlugins
	DrawableTheming
	DrawableLightbulb
	DrawableWarning
)

func Drawables() []Drawable {
	return []Drawable{
		DrawableInstallation,
		DrawablePresets,
		DrawablePlugins,
		DrawableTheming,
		DrawableLightbulb,
		DrawableWarning,
	}
}

func (d Drawable) String() string {
	switch d {
	case DrawableInstallation:
		return "installation"
	case DrawablePresets:
		return "presets"
	case DrawablePlugins:
		return "plugins"
	case DrawableTheming:
		return "theming"
	case DrawableLightbulb:
		return "lightbulb"
	case DrawableWarning:
		return "warning"
	default:
		return fmt.Sprintf("Drawable(%d)", int(d))
	}
}

func ParseDrawable(s string) (Drawable, error) {
	for _, d := range Drawables() {
		if d.String() == s {
			return d, nil
		}
	}
	return DrawableLightbulb, fmt.Errorf("%w: %q", ErrUnknownDrawable, s)
}

// StyleBundle holds the class strings applied to the three parts of a themed
// container. The strings are opaque to this package.
type StyleBundle struct {
	Container string
	Title     string
	Body      string
}
