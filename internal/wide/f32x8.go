package wide

import "math"

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This type carries the per-channel lanes of the luminance mask kernel.
type F32x8 [8]float32

// SplatF32 creates F32x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
// Returns a new F32x8 with v[i] + other[i] for each element.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Returns a new F32x8 with v[i] * other[i] for each element.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// RoundToEven rounds each element to the nearest integer, ties to even.
// This matches the rounding of a default-mode nearbyint, which the alpha
// store in the mask kernels depends on. float32 widens to float64 exactly,
// so rounding the widened value rounds the float32 value.
func (v F32x8) RoundToEven() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.RoundToEven(float64(v[i])))
	}
	return result
}
