package parallel

// Range is a half-open interval [Lo, Hi) of pixel indices.
type Range struct {
	Lo, Hi int
}

// Len returns the number of pixels in the range.
func (r Range) Len() int { return r.Hi - r.Lo }

// Split divides [0, n) into at most parts contiguous, disjoint ranges of
// near-equal size. Empty ranges are never produced: for n < parts the result
// has n single-pixel ranges, and for n == 0 it is empty.
//
// Chunk sizes are rounded up to a multiple of align (when align > 1) so
// every chunk except the last stays batch-width friendly.
func Split(n, parts, align int) []Range {
	if n <= 0 || parts <= 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	if align < 1 {
		align = 1
	}

	chunk := (n + parts - 1) / parts
	if rem := chunk % align; rem != 0 {
		chunk += align - rem
	}

	ranges := make([]Range, 0, parts)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		ranges = append(ranges, Range{Lo: lo, Hi: hi})
	}
	return ranges
}
