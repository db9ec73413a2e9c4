// Package micron parses Micron, the compact terminal-oriented markup
// language used to author NomadNet node pages, into a language-agnostic
// Abstract Syntax Tree (AST).
//
// [Parse] is the single entry point. It never fails: malformed markup is
// recovered from locally and silently, matching the behavior real NomadNet
// pages depend on when carried over lossy LXMF/Reticulum transports. The
// returned [Document] is immutable and holds no reference to the input
// after Parse returns.
//
// # Model
//
// A [Document] is an ordered sequence of [Line] values. Each Line has a
// [LineKind] (Normal, Heading, Divider, or Comment), an indent depth, an
// [Alignment], and an ordered sequence of [Element] values: [StyledText],
// [Link], [Field], or [Partial]. Every element carries a [Style] snapshot
// taken at the moment it was emitted; later control codes on the same line
// never retroactively change an already-emitted element.
//
// # Inline grammar
//
// Within a line, the backtick (`` ` ``) introduces a control code: toggles
// for bold/italic/underline, alignment codes, foreground/background color
// codes (hex or grayscale), a full reset, a literal-mode toggle, and three
// bracketed sub-forms -- `` `[ `` for links, `` `< `` for fields, and
// `` `{ `` for partials. A backslash escapes the following character,
// including inside sub-forms. See classify.go, tokenize.go, color.go,
// link.go, field.go, and partial.go for the exact grammar each stage
// implements.
//
// # What this package is not
//
// micron does not render anything, resolve URLs, evaluate partials, or
// enforce a schema on form fields. Those concerns belong to read-only
// collaborators built on top of the AST -- see the sibling packages
// [go.jacobcolvin.com/micron/render], [go.jacobcolvin.com/micron/formschema],
// and [go.jacobcolvin.com/micron/micronart] for examples that consume a
// [Document] without ever importing micron's internals.
package micron
