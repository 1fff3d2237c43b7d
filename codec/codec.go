// Package codec decodes and encodes the image files the editor works on.
// Decoding accepts PNG, JPEG, GIF, and BMP input; encoding picks the output
// format from the file extension.
package codec

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// DecodeError reports a source that could not be interpreted as an image:
// an unreadable file, an unsupported format, or corrupt data.
//
// No editor state is mutated when a DecodeError is returned; callers can
// keep working with whatever image was loaded before.
type DecodeError struct {
	// Path is the file that failed to decode. Empty when decoding from
	// an in-memory reader.
	Path string

	// Err is the underlying open or decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to decode image: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode reads an image from r and normalizes it to 8-bit NRGBA.
//
// The returned image is an independent copy; it shares no pixel storage
// with any internal decoder buffer. Failures are reported as *DecodeError.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return imaging.Clone(img), nil
}

// Open loads and decodes the image file at path.
//
// Both open and decode failures are reported as *DecodeError carrying the
// offending path.
func Open(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return imaging.Clone(img), nil
}

// Save encodes img to path. The output format is chosen by the file
// extension: .jpg, .jpeg, .png, .gif, .tif, .tiff, or .bmp. An
// unrecognized extension is an error and nothing is written.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
