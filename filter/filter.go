package filter

import (
	"image"
	"math"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
)

// Grayscale converts img to luminance replicated across all three color
// channels. The result is visually gray but keeps the 3-channel shape, so
// downstream stages and the display path need no special casing.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// AdjustColor applies the combined brightness/contrast mapping
//
//	out = clamp(contrast*in + brightness, 0, 255)
//
// to every color channel independently. Alpha passes through unchanged.
// contrast=1.0 with brightness=0 is the identity.
func AdjustColor(img image.Image, contrast float64, brightness int) *image.NRGBA {
	gain := float32(contrast)
	offset := float32(brightness) / 255

	g := gift.New(gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		return affine(r0, gain, offset), affine(g0, gain, offset), affine(b0, gain, offset), a0
	}))

	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// affine maps one normalized channel value, clamping into [0, 1].
func affine(v, gain, offset float32) float32 {
	v = v*gain + offset
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smooth applies a Gaussian blur whose standard deviation is derived from
// the nominal kernel span of 2*level+1 pixels. A level of zero or below
// returns an untouched copy. A constant image stays constant and alpha is
// carried through unchanged.
func Smooth(img image.Image, level int) *image.NRGBA {
	if level <= 0 {
		return imaging.Clone(img)
	}
	// Standard sigma derivation for a kernel spanning 2*level+1 pixels.
	sigma := 0.3*float64(level-1) + 0.8
	return imaging.Blur(img, sigma)
}

// ScalePercent resizes img to round(dim*percent/100) on each axis.
// Shrinking uses area-averaging (box) resampling; enlarging uses Lanczos.
// Each target dimension is clamped to a minimum of 1 so extreme inputs
// still yield a drawable image. percent=100 returns an untouched copy.
func ScalePercent(img image.Image, percent int) *image.NRGBA {
	if percent == 100 {
		return imaging.Clone(img)
	}

	bounds := img.Bounds()
	w := int(math.Round(float64(bounds.Dx()) * float64(percent) / 100))
	h := int(math.Round(float64(bounds.Dy()) * float64(percent) / 100))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	resample := imaging.Lanczos
	if percent < 100 {
		resample = imaging.Box
	}
	return imaging.Resize(img, w, h, resample)
}
