package editor

// Neutral values for each adjustment. Rendering with all of them leaves
// the preview pixel-identical to the base image.
const (
	DefaultBrightness = 0
	DefaultBlur       = 0
	DefaultContrast   = 1.0
	DefaultScale      = 100
)

// Settings holds the slider-driven, non-destructive adjustments. They
// shape the preview only; the base image and edit history never see them.
//
// The shell owns one Settings value, updates fields as its controls move,
// and passes it to Processor.RenderPreview after every change.
type Settings struct {
	Brightness int     // additive offset per channel, -100 to 100
	Blur       int     // smoothing strength, 0 to 20; kernel spans 2*Blur+1
	Contrast   float64 // multiplicative gain per channel, 0.5 to 3.0
	Scale      int     // output size in percent, 10 to 200
	Grayscale  bool    // render the preview desaturated
}

// NewSettings returns settings with every adjustment at its neutral value.
func NewSettings() *Settings {
	s := &Settings{}
	s.Reset()
	return s
}

// Reset restores every adjustment to its neutral value.
func (s *Settings) Reset() {
	s.Brightness = DefaultBrightness
	s.Blur = DefaultBlur
	s.Contrast = DefaultContrast
	s.Scale = DefaultScale
	s.Grayscale = false
}

// IsNeutral reports whether rendering with s would leave an image
// untouched.
func (s *Settings) IsNeutral() bool {
	return s.Brightness == DefaultBrightness &&
		s.Blur == DefaultBlur &&
		s.Contrast == DefaultContrast &&
		s.Scale == DefaultScale &&
		!s.Grayscale
}

// Clamp constrains every field to its documented range. Shells whose
// controls already enforce the ranges never need this; it exists to harden
// the boundary for programmatic callers.
func (s *Settings) Clamp() {
	s.Brightness = clampInt(s.Brightness, -100, 100)
	s.Blur = clampInt(s.Blur, 0, 20)
	s.Scale = clampInt(s.Scale, 10, 200)
	if s.Contrast < 0.5 {
		s.Contrast = 0.5
	}
	if s.Contrast > 3.0 {
		s.Contrast = 3.0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
