package micron

import "fmt"

// Color is an 8-bit-per-channel RGB color. See color.go for the grammar
// used to construct one from a Micron hex or grayscale payload.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string, for collaborators
// such as render and micronart that need to hand colors to a terminal or
// image library.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the color as an "rgb(r, g, b)" string.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Style is a by-value snapshot of the text styling in effect at the
// instant an [Element] was emitted. A Style is never shared mutably: once
// attached to an Element it does not change, even if the parser state that
// produced it later changes.
type Style struct {
	FG        *Color
	BG        *Color
	Bold      bool
	Italic    bool
	Underline bool
}

// Equal reports whether two styles describe the same rendering, including
// equal (or both-absent) colors.
func (s Style) Equal(o Style) bool {
	if s.Bold != o.Bold || s.Italic != o.Italic || s.Underline != o.Underline {
		return false
	}

	return colorEqual(s.FG, o.FG) && colorEqual(s.BG, o.BG)
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
