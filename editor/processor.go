package editor

import (
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-editor-core/codec"
	"github.com/ironsheep/image-editor-core/filter"
)

var (
	// ErrNoImage is returned when an operation that needs a loaded image
	// runs against a Processor that has never successfully loaded one, or
	// when Save is called with nothing to save.
	ErrNoImage = errors.New("no image loaded")

	// ErrEmptyHistory is returned by Undo and Redo when the respective
	// stack is empty. Like io.EOF it signals a normal condition rather
	// than a failure; shells typically surface it as an informational
	// message. State is left untouched.
	ErrEmptyHistory = errors.New("no edits to undo or redo")
)

// Axis selects the mirror direction for Flip.
type Axis int

const (
	// Horizontal mirrors left-right (around the vertical axis).
	Horizontal Axis = iota
	// Vertical mirrors top-bottom (around the horizontal axis).
	Vertical
)

// Gradient-magnitude thresholds for DetectEdges, on the 8-bit scale.
const (
	edgeThresholdLow  = 100
	edgeThresholdHigh = 200
)

// Processor owns one image and its edit history. The zero value is not
// ready for use; construct with NewProcessor. See the package
// documentation for the state model.
type Processor struct {
	source  *image.NRGBA // as decoded; replaced only by a new Load
	base    *image.NRGBA // working image, rewritten by destructive edits
	preview *image.NRGBA // derived from base + settings, never an input

	undo []*image.NRGBA // snapshots of base before each edit, newest last
	redo []*image.NRGBA // snapshots popped by Undo, newest last
}

// NewProcessor returns an unloaded Processor. Every operation except Load
// and LoadFrom fails with ErrNoImage until a load succeeds.
func NewProcessor() *Processor {
	return &Processor{}
}

// Load decodes the image file at path and installs it as the new source.
// The base image becomes an independent copy of the source, both history
// stacks are cleared, and the preview is initialized to the base image.
//
// On a *codec.DecodeError no state changes; a previously loaded image
// stays fully usable.
func (p *Processor) Load(path string) (*image.NRGBA, error) {
	img, err := codec.Open(path)
	if err != nil {
		return nil, err
	}
	p.install(img)
	return p.base, nil
}

// LoadFrom is Load for an in-memory source such as clipboard data or an
// embedded asset.
func (p *Processor) LoadFrom(r io.Reader) (*image.NRGBA, error) {
	img, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	p.install(img)
	return p.base, nil
}

// install atomically resets all image state around a freshly decoded
// image. Only called after a successful decode.
func (p *Processor) install(img *image.NRGBA) {
	p.source = img
	p.base = imaging.Clone(img)
	p.preview = imaging.Clone(img)
	p.undo = nil
	p.redo = nil
}

// Save encodes the current preview to path, choosing the format by file
// extension. Returns ErrNoImage when nothing has been loaded. Saving
// never alters processor state.
func (p *Processor) Save(path string) error {
	if p.preview == nil {
		return ErrNoImage
	}
	return codec.Save(p.preview, path)
}

// RevertToOriginal discards every destructive edit: the base image becomes
// a fresh copy of the source and both history stacks are cleared. Returns
// ErrNoImage if no image has ever been loaded.
func (p *Processor) RevertToOriginal() (*image.NRGBA, error) {
	if p.source == nil {
		return nil, ErrNoImage
	}
	p.base = imaging.Clone(p.source)
	p.preview = imaging.Clone(p.base)
	p.undo = nil
	p.redo = nil
	return p.base, nil
}

// commit snapshots the base image onto the undo stack before a destructive
// edit. Starting a new edit invalidates whatever was redoable.
func (p *Processor) commit() {
	p.undo = append(p.undo, imaging.Clone(p.base))
	p.redo = nil
}

// Rotate90 rotates the base image 90 degrees clockwise, swapping its
// dimensions. The edit is destructive and recorded on the undo stack.
func (p *Processor) Rotate90() (*image.NRGBA, error) {
	if p.base == nil {
		return nil, ErrNoImage
	}
	p.commit()
	// imaging rotations run counter-clockwise; 270 CCW is 90 CW.
	p.base = imaging.Rotate270(p.base)
	return p.base, nil
}

// Flip mirrors the base image along the given axis. Dimensions are
// unchanged. The edit is destructive and recorded on the undo stack.
func (p *Processor) Flip(axis Axis) (*image.NRGBA, error) {
	if p.base == nil {
		return nil, ErrNoImage
	}
	p.commit()
	if axis == Vertical {
		p.base = imaging.FlipV(p.base)
	} else {
		p.base = imaging.FlipH(p.base)
	}
	return p.base, nil
}

// DetectEdges replaces the base image with its Canny-style edge map:
// white where the luminance gradient clears the dual thresholds, black
// elsewhere, replicated across all three channels. The edit is destructive
// and recorded on the undo stack; Undo is the only way back.
func (p *Processor) DetectEdges() (*image.NRGBA, error) {
	if p.base == nil {
		return nil, ErrNoImage
	}
	p.commit()
	p.base = filter.DetectEdges(p.base, edgeThresholdLow, edgeThresholdHigh)
	return p.base, nil
}

// Undo restores the base image to its state before the most recent
// destructive edit, moving the current state onto the redo stack. Returns
// ErrEmptyHistory when there is nothing to undo.
func (p *Processor) Undo() (*image.NRGBA, error) {
	if p.base == nil {
		return nil, ErrNoImage
	}
	if len(p.undo) == 0 {
		return nil, ErrEmptyHistory
	}
	p.redo = append(p.redo, imaging.Clone(p.base))
	p.base = p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	return p.base, nil
}

// Redo reapplies the most recently undone edit, moving the current state
// back onto the undo stack. Returns ErrEmptyHistory when there is nothing
// to redo.
func (p *Processor) Redo() (*image.NRGBA, error) {
	if p.base == nil {
		return nil, ErrNoImage
	}
	if len(p.redo) == 0 {
		return nil, ErrEmptyHistory
	}
	p.undo = append(p.undo, imaging.Clone(p.base))
	p.base = p.redo[len(p.redo)-1]
	p.redo = p.redo[:len(p.redo)-1]
	return p.base, nil
}

// RenderPreview recomputes the preview from the base image and s, in the
// fixed stage order grayscale, brightness/contrast, blur, scale. Stages at
// their neutral value are skipped entirely, so neutral settings yield a
// pixel-identical copy of the base image.
//
// The base image and history are never touched; the result is stored as
// the new preview and returned.
func (p *Processor) RenderPreview(s Settings) (*image.NRGBA, error) {
	if p.base == nil {
		return nil, ErrNoImage
	}

	img := imaging.Clone(p.base)
	if s.Grayscale {
		img = filter.Grayscale(img)
	}
	if s.Contrast != DefaultContrast || s.Brightness != DefaultBrightness {
		img = filter.AdjustColor(img, s.Contrast, s.Brightness)
	}
	if s.Blur > DefaultBlur {
		img = filter.Smooth(img, s.Blur)
	}
	if s.Scale != DefaultScale {
		img = filter.ScalePercent(img, s.Scale)
	}

	p.preview = img
	return p.preview, nil
}

// Loaded reports whether an image has been successfully loaded.
func (p *Processor) Loaded() bool { return p.source != nil }

// Source returns the image as originally decoded, or nil when unloaded.
// Treat the result as read-only.
func (p *Processor) Source() *image.NRGBA { return p.source }

// Base returns the current working image, or nil when unloaded. Treat the
// result as read-only.
func (p *Processor) Base() *image.NRGBA { return p.base }

// Preview returns the most recently rendered preview (initially a copy of
// the base image), or nil when unloaded. Treat the result as read-only.
func (p *Processor) Preview() *image.NRGBA { return p.preview }

// CanUndo reports whether Undo would succeed.
func (p *Processor) CanUndo() bool { return len(p.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (p *Processor) CanRedo() bool { return len(p.redo) > 0 }
