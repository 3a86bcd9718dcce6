package lum

import "github.com/gogpu/clipmask/internal/wide"

// Lane constants for the luminance weights, splatted once.
var (
	wideRedLum   = wide.SplatF32(redLum)
	wideGreenLum = wide.SplatF32(greenLum)
	wideBlueLum  = wide.SplatF32(blueLum)
)

// luminanceBatch applies the luminance mask kernel to exactly
// wide.LumaWidth pixels.
//
// The lane operations mirror LuminanceScalar step for step: three separate
// weight multiplies, two adds, the alpha-weighting multiply, then the image
// alpha multiply. Each wide method body is one statement per lane, so the
// float rounding matches the scalar reference exactly.
func luminanceBatch(pix, mask []uint32) {
	var b wide.LumaBatch
	b.Load(pix, mask)

	lr := wideRedLum.Mul(b.MR)
	lg := wideGreenLum.Mul(b.MG)
	lb := wideBlueLum.Mul(b.MB)
	maskValue := b.MA.Mul(lr.Add(lg).Add(lb))

	alpha := b.PA.Mul(maskValue)
	b.StoreAlpha(alpha, pix)
}

// alphaBatch applies the alpha mask kernel to exactly wide.AlphaWidth pixels.
func alphaBatch(pix, mask []uint32) {
	var b wide.AlphaBatch
	b.Load(pix, mask)
	b.StoreAlpha(b.PA.Mul(b.MA).Div255(), pix)
}

// ApplyLuminanceBatched runs the batch luminance kernel over all full
// batches and the scalar reference over the remainder.
func ApplyLuminanceBatched(pix, mask []uint32) {
	n := len(pix)
	off := 0
	for off+wide.LumaWidth <= n {
		luminanceBatch(pix[off:off+wide.LumaWidth], mask[off:off+wide.LumaWidth])
		off += wide.LumaWidth
	}
	LuminanceScalar(pix[off:], mask[off:])
}

// ApplyAlphaBatched runs the batch alpha kernel over all full batches and
// the scalar reference over the remainder.
func ApplyAlphaBatched(pix, mask []uint32) {
	n := len(pix)
	off := 0
	for off+wide.AlphaWidth <= n {
		alphaBatch(pix[off:off+wide.AlphaWidth], mask[off:off+wide.AlphaWidth])
		off += wide.AlphaWidth
	}
	AlphaScalar(pix[off:], mask[off:])
}
