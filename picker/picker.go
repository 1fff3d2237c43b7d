// Package picker supports the editor shell's eyedropper and palette
// surfaces: sampling the color under the cursor and summarizing the most
// common colors in the current image.
package picker

import (
	"fmt"
	"image"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one sampled color in the representations a shell typically
// wants: hex for labels, 8-bit RGB for pixel math, HSL for intuitive
// adjustment readouts.
type Color struct {
	Hex     string // "#RRGGBB"
	R, G, B uint8
	H       int // hue, 0-360 degrees
	S       int // saturation, 0-100 percent
	L       int // lightness, 0-100 percent
}

// Sample returns the color at pixel (x, y). Coordinates are 0-based with
// the origin at the top-left; anything outside the image bounds is an
// error.
func Sample(img image.Image, x, y int) (*Color, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, bounds)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	c := makeColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	return &c, nil
}

// makeColor fills in every representation of an 8-bit RGB triple.
func makeColor(r, g, b uint8) Color {
	h, s, l := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsl()

	return Color{
		Hex: fmt.Sprintf("#%02X%02X%02X", r, g, b),
		R:   r, G: g, B: b,
		H: int(h + 0.5),
		S: int(s*100 + 0.5),
		L: int(l*100 + 0.5),
	}
}

// Frequency pairs a color with the share of pixels carrying it.
type Frequency struct {
	Color   Color
	Percent float64 // 0-100
}

// DominantColors returns up to n of the most common colors in img, most
// frequent first. Channels are quantized to 16-value buckets so nearby
// shades group together.
func DominantColors(img image.Image, n int) []Frequency {
	bounds := img.Bounds()

	counts := make(map[[3]uint8]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := [3]uint8{
				uint8(r>>8) / 16 * 16,
				uint8(g>>8) / 16 * 16,
				uint8(b>>8) / 16 * 16,
			}
			counts[key]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	out := make([]Frequency, 0, len(counts))
	for key, cnt := range counts {
		out = append(out, Frequency{
			Color:   makeColor(key[0], key[1], key[2]),
			Percent: float64(cnt) / float64(total) * 100,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Color.Hex < out[j].Color.Hex
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
