// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// This package implements wide types (F32x8, U16x16) that are designed to
// enable Go compiler auto-vectorization. By using fixed-size arrays and simple
// loops, these types allow the compiler to generate SIMD instructions on
// supported architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// F32x8: 8 float32 values for the luminance mask arithmetic.
// U16x16: 16 uint16 values for integer alpha arithmetic.
//
// # Batch States
//
// LumaBatch splits 8 packed ARGB words into per-channel float lanes
// (Structure-of-Arrays layout). AlphaBatch splits 16 packed ARGB words into
// image-alpha and mask-alpha uint16 lanes. Both exist so the mask kernels can
// operate on whole channels at once instead of one pixel at a time.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Keep each float operation in its own statement so the batch lanes and
//     the scalar reference round identically (no cross-operation fusion)
package wide
