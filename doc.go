// Package clipmask applies W3C clip masks to ARGB pixel buffers on the CPU.
//
// # Overview
//
// A clip mask derives a new alpha channel for an image from a second,
// same-size mask image. In the default luminance mode the mask's
// alpha-weighted Rec.709 luma scales each image pixel's alpha; in alpha mode
// only the mask's alpha channel does. Red, green and blue channels of the
// image are never modified. This is the compositing rule SVG and CSS masking
// specify, as used when painting masked shapes and layers.
//
// # Quick Start
//
//	import "github.com/gogpu/clipmask"
//
//	img := clipmask.NewSurface(512, 512)
//	mask := clipmask.NewSurface(512, 512)
//	// ... fill both surfaces ...
//
//	if err := clipmask.Apply(img, mask); err != nil {
//	    log.Fatal(err)
//	}
//
// # Numeric contract
//
// The luminance formula operates on raw 0..255 channel values without
// normalizing to [0,1], rounds to nearest (ties to even), and stores only
// the low 8 bits of the result. Downstream compositing depends on these
// exact semantics, so they are pinned by the tests and must not be "fixed".
//
// # Architecture
//
// The package dispatches to a batch kernel that processes pixels in
// fixed-width lanes (internal/wide) and to a scalar reference kernel for
// remainder pixels. Both produce byte-identical output; variant selection is
// purely a performance concern. ApplyParallel shards the buffers into
// disjoint ranges and runs them on a worker pool (internal/parallel), which
// is safe because each output pixel depends only on its own index.
package clipmask
