package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This type carries the integer alpha lanes of the alpha mask kernel.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Mul performs element-wise multiplication.
// Returns a new U16x16 with v[i] * other[i] for each element.
// Products of two 8-bit channel values fit without overflow (255*255 = 65025).
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div255 divides each element by 255 using fast approximation.
// Uses the formula: (x + 1 + (x >> 8)) >> 8
// This is equivalent to (x * 257) >> 16 and provides accurate division by 255.
func (v U16x16) Div255() U16x16 {
	var result U16x16
	for i := range v {
		x := v[i]
		result[i] = (x + 1 + (x >> 8)) >> 8
	}
	return result
}
