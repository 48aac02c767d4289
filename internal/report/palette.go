package report

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/nao1215/seocheck/internal/config"
	"github.com/nao1215/seocheck/internal/model"
)

// Palette holds the text styles used by the terminal writers.
// The zero value is not usable; create one with NewPalette.
type Palette struct {
	enabled bool
	bold    *color.Color
	title   *color.Color
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	healthy *color.Color
	partial *color.Color
	failing *color.Color
}

// NewPalette creates a Palette. When colorEnabled is false every style
// returns its input unchanged.
func NewPalette(colorEnabled bool) Palette {
	p := Palette{
		enabled: colorEnabled,
		bold:    color.New(color.Bold),
		title:   color.New(color.FgBlue, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		healthy: color.New(color.FgGreen, color.Bold),
		partial: color.New(color.FgYellow, color.Bold),
		failing: color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{p.bold, p.title, p.green, p.yellow, p.red, p.healthy, p.partial, p.failing} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Bold renders s in bold.
func (p Palette) Bold(s string) string { return p.bold.Sprint(s) }

// Title renders s as a heading.
func (p Palette) Title(s string) string { return p.title.Sprint(s) }

// Success renders s in green.
func (p Palette) Success(s string) string { return p.green.Sprint(s) }

// Warning renders s in yellow.
func (p Palette) Warning(s string) string { return p.yellow.Sprint(s) }

// Failure renders s in red.
func (p Palette) Failure(s string) string { return p.red.Sprint(s) }

// Health renders s in the color matching the platform health:
// green when nothing failed, yellow when some links failed, red when all did.
func (p Palette) Health(h model.Health, s string) string {
	switch h {
	case model.HealthAllActive:
		return p.healthy.Sprint(s)
	case model.HealthPartial:
		return p.partial.Sprint(s)
	default:
		return p.failing.Sprint(s)
	}
}

// ColorEnabled resolves a color mode for the given output.
// In auto mode colors are used only when out is a terminal.
func ColorEnabled(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
