package micronart

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// halfBlock is the upper-half-block glyph used to pack two pixel rows into
// one terminal cell: its foreground paints the top pixel, its background
// the bottom.
const halfBlock = "▀"

// Encode renders img as a Micron document fitting within cols columns and
// rows rows, where each row represents two vertical source pixels. The
// image is resized to fit the target bounds while preserving aspect ratio
// and centered with black padding.
func Encode(img image.Image, cols, rows int) string {
	resized := resize(img, cols, rows)

	var doc strings.Builder

	pixH := resized.Bounds().Dy()

	for row := range rows {
		if row > 0 {
			doc.WriteString("\n")
		}

		topY := row * 2
		botY := topY + 1

		for x := range cols {
			top := resized.RGBAAt(x, topY)

			var bot color.RGBA
			if botY < pixH {
				bot = resized.RGBAAt(x, botY)
			}

			fmt.Fprintf(&doc, "`F%02x%02x%02x`B%02x%02x%02x%s",
				top.R, top.G, top.B, bot.R, bot.G, bot.B, halfBlock)
		}
	}

	return doc.String()
}

// resize scales img to fit within cols x rows terminal cells (each cell
// representing 2 vertical pixels), centering it within the bounds and
// padding with black.
func resize(img image.Image, cols, rows int) *image.RGBA {
	pixW := cols
	pixH := rows * 2

	dst := image.NewRGBA(image.Rect(0, 0, pixW, pixH))

	srcBounds := img.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	scaleX := float64(pixW) / float64(srcW)
	scaleY := float64(pixH) / float64(srcH)

	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	offsetX := (pixW - newW) / 2
	offsetY := (pixH - newH) / 2

	dstRect := image.Rect(offsetX, offsetY, offsetX+newW, offsetY+newH)
	draw.ApproxBiLinear.Scale(dst, dstRect, img, srcBounds, draw.Over, nil)

	return dst
}
