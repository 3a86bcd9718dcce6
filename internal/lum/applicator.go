package lum

// Applicator is a numeric batch strategy for the mask kernels.
//
// Every applicator implements the same mathematical contract; they differ
// only in how many pixels they handle per step. Selecting one is purely a
// performance decision, never a correctness one: all applicators produce
// byte-identical output for the same input, and Scalar is the baseline the
// others are held to.
//
// Both slices must be index-aligned and of equal length; the caller
// (the clipmask package) validates that before dispatch.
type Applicator interface {
	// Name identifies the applicator in logs and tests.
	Name() string

	// ApplyLuminance rewrites each image pixel's alpha from the mask's
	// alpha-weighted Rec.709 luma. RGB channels pass through untouched.
	ApplyLuminance(pix, mask []uint32)

	// ApplyAlpha rewrites each image pixel's alpha from the mask's alpha
	// alone. RGB channels pass through untouched.
	ApplyAlpha(pix, mask []uint32)
}

// Scalar processes one pixel at a time. It is the reference implementation:
// the batch applicators use it for remainder pixels, and the equivalence
// tests compare every other applicator against it.
type Scalar struct{}

// Name returns "scalar".
func (Scalar) Name() string { return "scalar" }

// ApplyLuminance applies the luminance mask one pixel at a time.
func (Scalar) ApplyLuminance(pix, mask []uint32) { LuminanceScalar(pix, mask) }

// ApplyAlpha applies the alpha mask one pixel at a time.
func (Scalar) ApplyAlpha(pix, mask []uint32) { AlphaScalar(pix, mask) }

// Wide processes pixels in fixed-width lane batches (8 float lanes for
// luminance, 16 integer lanes for alpha) with a scalar tail for the
// remainder. The lane loops are written for compiler auto-vectorization.
type Wide struct{}

// Name returns "wide".
func (Wide) Name() string { return "wide" }

// ApplyLuminance applies the luminance mask in batches of 8 pixels.
func (Wide) ApplyLuminance(pix, mask []uint32) { ApplyLuminanceBatched(pix, mask) }

// ApplyAlpha applies the alpha mask in batches of 16 pixels.
func (Wide) ApplyAlpha(pix, mask []uint32) { ApplyAlphaBatched(pix, mask) }

// Best returns the preferred applicator for this platform.
//
// The wide applicator carries no platform requirements beyond what the Go
// compiler vectorizes, so it is always preferred; Scalar remains available
// for injection and as the baseline.
func Best() Applicator { return Wide{} }

// All returns every applicator, reference first. Tests iterate this to
// assert the variants agree pixel-for-pixel.
func All() []Applicator {
	return []Applicator{Scalar{}, Wide{}}
}
