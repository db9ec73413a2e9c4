// Package render converts a parsed [go.jacobcolvin.com/micron.Document]
// into a terminal-ready ANSI string. It is an optional, read-only
// consumer of the public micron AST — it never reaches into parser
// internals — and demonstrates one way a terminal UI might present Micron
// markup without being required by the parser itself.
//
// Styled runs are converted from [go.jacobcolvin.com/micron.Style] to
// [charm.land/lipgloss/v2.Style]. Colors are downgraded for the detected
// or requested [github.com/charmbracelet/colorprofile.Profile] before
// rendering, so output degrades gracefully on ANSI256 or plain terminals.
// Headings get a bold/underline treatment scaled by level; dividers repeat
// their rule character to the render width; links and fields render as
// inline placeholders.
package render
