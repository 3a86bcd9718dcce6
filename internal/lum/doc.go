// Package lum implements the clip-mask alpha kernels.
//
// A clip mask rewrites the alpha channel of an image buffer from a parallel
// mask buffer. Two W3C mask modes exist: luminance (the mask's alpha-weighted
// Rec.709 luma scales the image alpha) and alpha (only the mask's alpha
// scales the image alpha). Both operate on packed 32-bit ARGB words and touch
// nothing but the top byte of each image pixel.
//
// Every kernel ships in two numerically interchangeable forms: a scalar
// reference that handles one pixel at a time, and a batch form built on the
// wide package that handles a fixed number of pixels per step and falls back
// to the scalar reference for the remainder. Which form runs is purely a
// performance concern; all forms produce byte-identical output, and the tests
// hold them to that.
package lum
