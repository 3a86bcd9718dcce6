package lum

import "github.com/gogpu/clipmask/internal/wide"

// Rec.709 luma coefficients. Fixed by the W3C luminance mask rule,
// never configurable.
const (
	redLum   = 0.2125
	greenLum = 0.7154
	blueLum  = 0.0721
)

// rgbMask keeps the low 24 bits (red, green, blue) of a packed ARGB word.
const rgbMask = 0x00FFFFFF

// LuminanceScalar is the reference luminance mask kernel.
//
// For each index i it computes the mask's alpha-weighted Rec.709 luma with
// all channels kept in their 0..255 integer range (no normalization), scales
// the image alpha by it, and stores the result rounded to nearest, ties to
// even:
//
//	maskValue = maskA * (0.2125*maskR + 0.7154*maskG + 0.0721*maskB)
//	newAlpha  = round(pixA * maskValue)
//
// The store keeps only the low 8 bits of the rounded value, the same
// truncation an unsigned 8-bit store performs. There is deliberately no
// clamp; downstream compositing depends on the exact unnormalized formula.
//
// Each product sits in its own statement so no multiply-add pair shares an
// expression: the Go compiler may fuse a*b+c inside one expression into an
// FMA, and fusion here would break bit-equality with the batch kernels.
func LuminanceScalar(pix, mask []uint32) {
	for i := range pix {
		m := mask[i]
		ma := float32(m >> 24 & 0xFF)
		mr := float32(m >> 16 & 0xFF)
		mg := float32(m >> 8 & 0xFF)
		mb := float32(m & 0xFF)

		lr := redLum * mr
		lg := greenLum * mg
		lb := blueLum * mb
		maskValue := ma * (lr + lg + lb)

		pa := float32(pix[i] >> 24)
		alpha := pa * maskValue

		pix[i] = pix[i]&rgbMask | wide.RoundAlpha(alpha)<<24
	}
}

// AlphaScalar is the reference alpha mask kernel.
//
// For each index i the image alpha is scaled by the mask alpha alone:
//
//	newAlpha = (pixA * maskA) / 255
//
// using the shift formula (x + 1 + (x >> 8)) >> 8, which is exact floor
// division by 255 for any product of two bytes. It is the same formula the
// U16x16 lanes use, so batch and scalar stay bit-identical.
func AlphaScalar(pix, mask []uint32) {
	for i := range pix {
		x := uint16(pix[i]>>24) * uint16(mask[i]>>24)
		a := uint32((x + 1 + (x >> 8)) >> 8)
		pix[i] = pix[i]&rgbMask | a<<24
	}
}
