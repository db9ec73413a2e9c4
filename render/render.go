package render

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"go.jacobcolvin.com/micron"
)

// Config controls how [Render] converts a [micron.Document] to a string.
type Config struct {
	// Width is the target line width used to expand dividers and pad
	// aligned text. Zero disables width-aware behavior: dividers render a
	// single rule character and alignment has no visible effect.
	Width int
	// Profile downgrades requested colors to what the destination
	// terminal can display. The zero value is [colorprofile.TrueColor],
	// which performs no downgrade.
	Profile colorprofile.Profile
}

// Option configures a [Config].
type Option func(*Config)

// WithWidth sets the target render width.
func WithWidth(width int) Option {
	return func(c *Config) { c.Width = width }
}

// WithProfile sets the color profile to downgrade to.
func WithProfile(profile colorprofile.Profile) Option {
	return func(c *Config) { c.Profile = profile }
}

// Render converts doc into an ANSI-styled string, one output line per
// source [micron.Line], joined with "\n". It never mutates doc.
func Render(doc *micron.Document, opts ...Option) string {
	cfg := &Config{Profile: colorprofile.TrueColor}
	for _, opt := range opts {
		opt(cfg)
	}

	lines := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = cfg.renderLine(&line)
	}

	return strings.Join(lines, "\n")
}

func (c *Config) renderLine(line *micron.Line) string {
	switch line.Kind {
	case micron.LineComment:
		return ""
	case micron.LineDivider:
		return c.renderDivider(line)
	case micron.LineHeading:
		return c.align(c.renderHeading(line), line.Alignment)
	default:
		return c.align(c.renderElements(line.Elements), line.Alignment)
	}
}

func (c *Config) renderDivider(line *micron.Line) string {
	width := c.Width
	if width <= 0 {
		width = 1
	}

	return strings.Repeat(string(line.DividerChar), width)
}

func (c *Config) renderHeading(line *micron.Line) string {
	style := lipgloss.NewStyle().Bold(true)
	if line.HeadingLevel <= 1 {
		style = style.Underline(true)
	}

	return style.Render(c.renderElements(line.Elements))
}

func (c *Config) renderElements(elements []micron.Element) string {
	var b strings.Builder

	for _, el := range elements {
		switch e := el.(type) {
		case micron.StyledText:
			b.WriteString(c.styleOf(e.Style).Render(e.Text))
		case micron.Link:
			b.WriteString(c.styleOf(e.Style).Render(fmt.Sprintf("[%s](%s)", e.Label, e.URL)))
		case micron.Field:
			b.WriteString(fmt.Sprintf("(field: %s)", e.Name))
		case micron.Partial:
			b.WriteString(fmt.Sprintf("(partial: %s)", e.URL))
		}
	}

	return b.String()
}

func (c *Config) styleOf(s micron.Style) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline)

	if s.FG != nil {
		style = style.Foreground(c.convert(*s.FG))
	}

	if s.BG != nil {
		style = style.Background(c.convert(*s.BG))
	}

	return style
}

func (c *Config) convert(col micron.Color) color.Color {
	rgba := color.RGBA{R: col.R, G: col.G, B: col.B, A: 255}

	return c.Profile.Convert(rgba)
}

func (c *Config) align(s string, alignment micron.Alignment) string {
	if c.Width <= 0 || alignment == micron.AlignLeft {
		return s
	}

	pos := lipgloss.Left
	if alignment == micron.AlignCenter {
		pos = lipgloss.Center
	} else if alignment == micron.AlignRight {
		pos = lipgloss.Right
	}

	return lipgloss.NewStyle().Width(c.Width).Align(pos).Render(s)
}
