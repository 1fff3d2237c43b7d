package filter

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func newUniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAdjustColor(t *testing.T) {
	tests := []struct {
		name       string
		in         uint8
		contrast   float64
		brightness int
		want       uint8
	}{
		{"identity", 128, 1.0, 0, 128},
		{"brightness only", 200, 1.0, 50, 250},
		{"clamps high", 200, 3.0, 0, 255},
		{"clamps low", 10, 1.0, -100, 0},
		{"contrast doubles", 100, 2.0, 0, 200},
		{"combined", 100, 1.5, 20, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newUniformImage(4, 4, color.NRGBA{tt.in, tt.in, tt.in, 255})
			out := AdjustColor(src, tt.contrast, tt.brightness)

			got := out.NRGBAAt(2, 2)
			if got.R != tt.want || got.G != tt.want || got.B != tt.want {
				t.Errorf("pixel: got (%d,%d,%d), want %d on every channel",
					got.R, got.G, got.B, tt.want)
			}
			if got.A != 255 {
				t.Errorf("alpha: got %d, want 255", got.A)
			}
		})
	}
}

func TestAdjustColor_ChannelsIndependent(t *testing.T) {
	src := newUniformImage(2, 2, color.NRGBA{10, 100, 250, 255})
	out := AdjustColor(src, 1.0, 20)

	got := out.NRGBAAt(0, 0)
	want := color.NRGBA{30, 120, 255, 255} // 250+20 clamps to 255
	if got != want {
		t.Errorf("pixel: got %v, want %v", got, want)
	}
}

func TestAdjustColor_DoesNotMutateSource(t *testing.T) {
	src := newUniformImage(3, 3, color.NRGBA{100, 100, 100, 255})
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	AdjustColor(src, 2.0, 50)

	if !bytes.Equal(src.Pix, before) {
		t.Error("AdjustColor mutated its source image")
	}
}

func TestSmooth_ZeroLevelIsIdentity(t *testing.T) {
	src := newUniformImage(5, 5, color.NRGBA{40, 80, 120, 255})
	out := Smooth(src, 0)

	if out == src {
		t.Fatal("Smooth(0) must return a copy, not the source")
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Error("Smooth(0) changed pixel data")
	}
}

func TestSmooth_UniformStaysUniform(t *testing.T) {
	// A normalized Gaussian must not shift a constant image, and the
	// alpha channel must come through at full opacity everywhere.
	want := color.NRGBA{128, 128, 128, 255}
	src := newUniformImage(21, 21, want)

	out := Smooth(src, 3)

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if got := out.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSmooth_SpreadsBrightSpot(t *testing.T) {
	src := newUniformImage(11, 11, color.NRGBA{0, 0, 0, 255})
	src.SetNRGBA(5, 5, color.NRGBA{255, 255, 255, 255})

	out := Smooth(src, 2)

	if out.NRGBAAt(5, 5).R >= 255 {
		t.Error("bright spot should be reduced after smoothing")
	}
	if out.NRGBAAt(4, 5).R == 0 && out.NRGBAAt(6, 5).R == 0 {
		t.Error("neighbors should receive some brightness from smoothing")
	}
}

func TestScalePercent(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		percent      int
		wantW, wantH int
	}{
		{"down to 10%", 100, 100, 10, 10, 10},
		{"up to 200%", 100, 100, 200, 200, 200},
		{"half", 64, 32, 50, 32, 16},
		{"rounding", 15, 15, 50, 8, 8}, // 7.5 rounds away from zero
		{"clamps to 1x1", 3, 3, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newUniformImage(tt.w, tt.h, color.NRGBA{90, 90, 90, 255})
			out := ScalePercent(src, tt.percent)

			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScalePercent_HundredIsIdentity(t *testing.T) {
	src := newUniformImage(7, 9, color.NRGBA{1, 2, 3, 255})
	out := ScalePercent(src, 100)

	if out == src {
		t.Fatal("ScalePercent(100) must return a copy, not the source")
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Error("ScalePercent(100) changed pixel data")
	}
}

func TestGrayscale(t *testing.T) {
	src := newUniformImage(4, 4, color.NRGBA{255, 0, 0, 255})
	out := Grayscale(src)

	got := out.NRGBAAt(1, 1)
	if got.R != got.G || got.G != got.B {
		t.Errorf("channels should be identical after Grayscale, got %v", got)
	}
	// Pure red luminance lands mid-low regardless of the exact weighting.
	if got.R < 40 || got.R > 90 {
		t.Errorf("red luminance: got %d, want within [40, 90]", got.R)
	}
	if got.A != 255 {
		t.Errorf("alpha: got %d, want 255", got.A)
	}
}
