package wide

import "math"

// LumaWidth is the number of pixels a LumaBatch processes per step.
const LumaWidth = 8

// AlphaWidth is the number of pixels an AlphaBatch processes per step.
const AlphaWidth = 16

// rgbMask keeps the low 24 bits (red, green, blue) of a packed ARGB word.
const rgbMask = 0x00FFFFFF

// LumaBatch holds 8 packed ARGB pixels split into per-channel float lanes.
// Uses Structure-of-Arrays (SoA) layout for SIMD-friendly access.
//
// Packed Array-of-Structures (AoS) layout:
//
//	[A0R0G0B0, A1R1G1B1, ...]
//
// Structure-of-Arrays (SoA) layout:
//
//	PA: [pixA0, pixA1, ..., pixA7]
//	MA: [maskA0, maskA1, ..., maskA7]
//	MR: [maskR0, maskR1, ..., maskR7]
//	...
//
// SoA layout enables SIMD operations on entire color channels at once.
type LumaBatch struct {
	PA             F32x8 // image alpha (8 pixels)
	MA, MR, MG, MB F32x8 // mask ARGB channels (8 pixels)
}

// Load splits 8 packed ARGB words from pix and mask into channel lanes.
// Both slices must have at least LumaWidth elements.
func (b *LumaBatch) Load(pix, mask []uint32) {
	for i := 0; i < LumaWidth; i++ {
		b.PA[i] = float32(pix[i] >> 24)
		m := mask[i]
		b.MA[i] = float32(m >> 24 & 0xFF)
		b.MR[i] = float32(m >> 16 & 0xFF)
		b.MG[i] = float32(m >> 8 & 0xFF)
		b.MB[i] = float32(m & 0xFF)
	}
}

// StoreAlpha rounds the alpha lanes to the nearest integer (ties to even)
// and writes them into the top byte of each pixel, preserving the RGB bits.
// Out-of-range lanes truncate to their low 8 bits, matching an unsigned
// 8-bit store.
func (b *LumaBatch) StoreAlpha(alpha F32x8, pix []uint32) {
	rounded := alpha.RoundToEven()
	for i := 0; i < LumaWidth; i++ {
		a := uint32(int32(rounded[i]))
		pix[i] = pix[i]&rgbMask | a<<24
	}
}

// AlphaBatch holds 16 packed ARGB pixels reduced to their alpha lanes.
// Only the two alpha channels participate in the alpha mask kernel, so the
// RGB lanes are never extracted.
type AlphaBatch struct {
	PA U16x16 // image alpha (16 pixels)
	MA U16x16 // mask alpha (16 pixels)
}

// Load extracts the alpha channels of 16 packed ARGB words.
// Both slices must have at least AlphaWidth elements.
func (b *AlphaBatch) Load(pix, mask []uint32) {
	for i := 0; i < AlphaWidth; i++ {
		b.PA[i] = uint16(pix[i] >> 24)
		b.MA[i] = uint16(mask[i] >> 24)
	}
}

// StoreAlpha writes the alpha lanes into the top byte of each pixel,
// preserving the RGB bits. Lane values must already be in [0, 255].
func (b *AlphaBatch) StoreAlpha(alpha U16x16, pix []uint32) {
	for i := 0; i < AlphaWidth; i++ {
		pix[i] = pix[i]&rgbMask | uint32(alpha[i])<<24
	}
}

// RoundAlpha rounds one alpha value exactly the way the batch store does.
// Kernel tails call it so batch and scalar results stay bit-identical.
func RoundAlpha(alpha float32) uint32 {
	return uint32(int32(math.RoundToEven(float64(alpha))))
}
