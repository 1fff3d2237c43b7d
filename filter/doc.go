// Package filter implements the pixel-level transformations behind the
// editor's adjustment pipeline and its edge-detection effect.
//
// All functions are pure: they read the source image, allocate a fresh
// *image.NRGBA result, and never mutate their input. This is what lets the
// editor recompute previews from scratch on every settings change without
// accumulating rounding drift.
//
// # Numeric Conventions
//
// Images are treated as three 8-bit color channels; the alpha channel is
// carried through untouched (the editor keeps it at 255). Brightness and
// contrast combine into a single affine map applied to each channel
// independently:
//
//	out = clamp(contrast*in + brightness, 0, 255)
//
// Smoothing uses a Gaussian whose standard deviation is derived from a
// nominal kernel span of 2*level+1 pixels. Scaling uses
// area-averaging (box) resampling when shrinking and Lanczos resampling
// when enlarging; target dimensions are clamped to at least 1x1 so the
// pipeline always produces an image.
package filter
