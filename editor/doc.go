// Package editor implements the state model of an interactive raster-image
// editor: a Processor owning the loaded image and its destructive edit
// history, and the Settings value driving the non-destructive preview.
//
// # Image State
//
// A Processor tracks three images:
//
//   - the source image, exactly as decoded; only a new Load replaces it
//   - the base image, the working copy that destructive edits (rotate,
//     flip, edge detection) permanently rewrite
//   - the preview, recomputed on demand from the base image and the
//     current Settings, and never fed back into any other state
//
// Destructive edits snapshot the base image onto a linear undo stack
// before applying; Undo and Redo move the base image along that history.
// Committing any new edit discards the redo stack. Every snapshot is an
// independent deep copy, so later edits can never corrupt history entries.
//
// # Preview Pipeline
//
// RenderPreview recomputes the preview from scratch on every call rather
// than applying deltas to the previous preview. Incremental application
// would accumulate rounding error across repeated slider changes; a full
// recompute keeps the preview a pure function of (base image, settings).
// The stage order is fixed: grayscale, brightness/contrast, blur, scale.
//
// # Input Ranges
//
// Settings fields have documented ranges (see Settings) that the shell is
// expected to enforce at its widgets, with Clamp available to harden that
// boundary. The Processor itself does not re-validate; out-of-range values
// degrade gracefully (outputs clamp to 8-bit, target dimensions clamp to
// 1x1) instead of failing.
//
// # Concurrency
//
// A Processor is owned by a single caller and is not safe for concurrent
// use. Every operation runs synchronously to completion; shells that need
// a responsive UI during a long blur or resize should do their own
// scheduling around the call.
package editor
