// Package micronart renders a raster image as a Micron document using the
// half-block technique: each output line packs two vertical pixel rows
// into one row of "▀" characters, the top pixel as foreground and the
// bottom pixel as background.
//
// Unlike a raw-ANSI video renderer, [Encode] emits Micron's own `F`/`B`
// six-hex color codes rather than SGR escapes, so its output is a valid
// Micron document: [go.jacobcolvin.com/micron.Parse] round-trips it back
// into one [go.jacobcolvin.com/micron.LineNormal] Line per source row,
// with alternating [go.jacobcolvin.com/micron.StyledText] runs whose
// foreground and background equal the sampled pixels.
package micronart
