package filter

import (
	"image"
	"math"
)

// DetectEdges runs Canny-style edge detection over img and returns a new
// image where edge pixels are white (255) and everything else is black, the
// value replicated across all three color channels.
//
// Stages: luminance conversion, 5x5 Gaussian pre-blur, Sobel gradients,
// non-maximum suppression, then dual-threshold hysteresis. Gradient
// magnitudes below low are discarded, magnitudes above high are always
// edges, and the band in between is kept only when connected to a strong
// edge. Thresholds are on the 8-bit scale (0-255).
//
// A uniform image has no gradients anywhere and yields an all-black result.
func DetectEdges(img image.Image, low, high int) *image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	lum := luminancePlane(img)
	smoothed := preBlur(lum, width, height)
	magnitude, direction := sobelGradients(smoothed, width, height)
	thinned := suppressNonMaxima(magnitude, direction, width, height)

	return traceEdges(thinned, width, height, float64(low)/255, float64(high)/255)
}

// luminancePlane converts img to a normalized [0,1] luminance grid using
// ITU-R BT.601 weights.
func luminancePlane(img image.Image) [][]float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	lum := make([][]float64, height)
	for y := 0; y < height; y++ {
		lum[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(r>>8) / 255.0
			gf := float64(g>>8) / 255.0
			bf := float64(b>>8) / 255.0
			lum[y][x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}
	return lum
}

// preBlur smooths the luminance plane with a 5x5 Gaussian kernel
// (sigma ~1.4, sum 273) to keep sensor noise out of the gradient pass.
// Border pixels use clamped edge values.
func preBlur(plane [][]float64, width, height int) [][]float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	const kernelSum = 273.0

	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clampIndex(y+ky, height-1)
					px := clampIndex(x+kx, width-1)
					sum += plane[py][px] * kernel[ky+2][kx+2]
				}
			}
			out[y][x] = sum / kernelSum
		}
	}
	return out
}

// sobelGradients computes per-pixel gradient magnitude and direction with
// the 3x3 Sobel operators.
func sobelGradients(plane [][]float64, width, height int) (magnitude, direction [][]float64) {
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	magnitude = make([][]float64, height)
	direction = make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clampIndex(y+ky, height-1)
					px := clampIndex(x+kx, width-1)
					gx += plane[py][px] * sobelX[ky+1][kx+1]
					gy += plane[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}
	return magnitude, direction
}

// suppressNonMaxima thins edges to single-pixel width by zeroing any pixel
// that is not a local maximum along its gradient direction. The outermost
// pixel ring is always suppressed.
func suppressNonMaxima(magnitude, direction [][]float64, width, height int) [][]float64 {
	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			default:
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				out[y][x] = mag
			}
		}
	}
	return out
}

// traceEdges applies dual-threshold hysteresis and writes the final edge
// map. Thresholds arrive normalized to the [0,1] luminance scale.
func traceEdges(magnitude [][]float64, width, height int, low, high float64) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := magnitude[y][x]
			edge := false
			if val >= high {
				edge = true
			} else if val >= low {
				// Weak edges survive only next to a strong one.
				for ky := -1; ky <= 1 && !edge; ky++ {
					for kx := -1; kx <= 1 && !edge; kx++ {
						py := clampIndex(y+ky, height-1)
						px := clampIndex(x+kx, width-1)
						if magnitude[py][px] >= high {
							edge = true
						}
					}
				}
			}

			i := out.PixOffset(x, y)
			var v uint8
			if edge {
				v = 255
			}
			out.Pix[i] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
			out.Pix[i+3] = 255
		}
	}
	return out
}

// clampIndex constrains an index to [0, max] for border handling in the
// convolution passes.
func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
