package clipmask

import (
	"errors"
	"fmt"
)

// Common errors for surface construction and mask application.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("clipmask: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("clipmask: data buffer too small")

	// ErrSizeMismatch is returned when image and mask dimensions differ.
	ErrSizeMismatch = errors.New("clipmask: image and mask sizes differ")

	// ErrInvalidRange is returned when a pixel range is out of bounds.
	ErrInvalidRange = errors.New("clipmask: pixel range out of bounds")
)

// Surface is a bounds-checked buffer of packed 32-bit ARGB pixels.
//
// The top byte of each word is alpha, followed by red, green and blue.
// Pixels are stored row-major and contiguous, no stride or padding. The
// caller owns the backing slice; mask application mutates it in place and
// never allocates.
type Surface struct {
	width  int
	height int
	pix    []uint32
}

// NewSurface creates a surface with the given dimensions, all pixels zero
// (transparent black).
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// FromRaw wraps an existing pixel slice without copying.
// The slice must hold at least width*height words; extra capacity is ignored.
// The caller must keep the slice valid for the lifetime of the Surface.
func FromRaw(pix []uint32, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	if len(pix) < n {
		return nil, fmt.Errorf("%w: have %d words, need %d", ErrDataTooSmall, len(pix), n)
	}
	return &Surface{width: width, height: height, pix: pix[:n]}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Len returns the total pixel count.
func (s *Surface) Len() int { return len(s.pix) }

// Pix returns the backing pixel slice. Mutations are visible to the surface.
func (s *Surface) Pix() []uint32 { return s.pix }

// At returns the packed ARGB word at (x, y).
// Returns 0 for coordinates outside the surface.
func (s *Surface) At(x, y int) uint32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.width+x]
}

// Set stores a packed ARGB word at (x, y).
// Coordinates outside the surface are ignored.
func (s *Surface) Set(x, y int, argb uint32) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = argb
}

// Fill sets every pixel to the given packed ARGB word.
func (s *Surface) Fill(argb uint32) {
	for i := range s.pix {
		s.pix[i] = argb
	}
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	pix := make([]uint32, len(s.pix))
	copy(pix, s.pix)
	return &Surface{width: s.width, height: s.height, pix: pix}
}

// sameSize reports whether two surfaces have identical dimensions.
func sameSize(a, b *Surface) bool {
	return a.width == b.width && a.height == b.height
}
