// Package display prepares editor images for on-screen presentation.
package display

import (
	"image"

	"github.com/disintegration/imaging"
)

// Fit returns a copy of img scaled down to fit within maxW x maxH while
// preserving aspect ratio. Images that already fit are returned as an
// unscaled copy; Fit never enlarges.
func Fit(img image.Image, maxW, maxH int) *image.NRGBA {
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// Pixels returns a tightly packed, row-major RGBA byte slice of img,
// suitable for handing to display toolkits that want a raw pixel buffer.
// The slice is a copy; mutating it does not affect img.
func Pixels(img *image.NRGBA) []uint8 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := make([]uint8, 0, w*h*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y) : img.PixOffset(bounds.Min.X, y)+w*4]
		out = append(out, row...)
	}
	return out
}
