package clipmask

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomSurfaces builds an image/mask pair with deterministic random pixels.
func randomSurfaces(t testing.TB, w, h int, seed int64) (img, mask *Surface) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	img = NewSurface(w, h)
	mask = NewSurface(w, h)
	for i := range img.pix {
		img.pix[i] = rng.Uint32()
		mask.pix[i] = rng.Uint32()
	}
	return img, mask
}

func TestApplySizeMismatch(t *testing.T) {
	img := NewSurface(10, 10)
	mask := NewSurface(10, 11)

	err := Apply(img, mask)
	require.ErrorIs(t, err, ErrSizeMismatch)

	err = ApplyParallel(img, mask)
	require.ErrorIs(t, err, ErrSizeMismatch)

	err = ApplyRegion(img, mask, 0, 10)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestApplyRegionBounds(t *testing.T) {
	img, mask := randomSurfaces(t, 8, 8, 1)

	require.ErrorIs(t, ApplyRegion(img, mask, -1, 10), ErrInvalidRange)
	require.ErrorIs(t, ApplyRegion(img, mask, 0, 65), ErrInvalidRange)
	require.ErrorIs(t, ApplyRegion(img, mask, 40, 30), ErrInvalidRange)

	// Empty range is valid and a no-op.
	before := img.Clone()
	require.NoError(t, ApplyRegion(img, mask, 5, 5))
	assert.Equal(t, before.pix, img.pix)
}

func TestApplyModes(t *testing.T) {
	img := NewSurface(1, 1)
	mask := NewSurface(1, 1)

	// Opaque white mask: luminance mode reproduces the image alpha
	// (maskValue is exactly 65025, which is 1 mod 256).
	img.Set(0, 0, ARGB(200, 1, 2, 3))
	mask.Set(0, 0, ARGB(255, 255, 255, 255))
	require.NoError(t, Apply(img, mask))
	assert.Equal(t, ARGB(200, 1, 2, 3), img.At(0, 0))

	// Opaque black mask: luminance zero, alpha mode ignores color entirely.
	img.Set(0, 0, ARGB(200, 1, 2, 3))
	mask.Set(0, 0, ARGB(255, 0, 0, 0))
	require.NoError(t, Apply(img, mask))
	assert.Equal(t, ARGB(0, 1, 2, 3), img.At(0, 0))

	img.Set(0, 0, ARGB(200, 1, 2, 3))
	require.NoError(t, Apply(img, mask, WithMode(MaskAlpha)))
	assert.Equal(t, ARGB(200, 1, 2, 3), img.At(0, 0))
}

func TestApplyParallelMatchesSerial(t *testing.T) {
	for _, mode := range []Mode{MaskLuminance, MaskAlpha} {
		for _, size := range [][2]int{{1, 1}, {7, 3}, {64, 64}, {501, 33}, {800, 600}} {
			img, mask := randomSurfaces(t, size[0], size[1], int64(size[0]))

			serial := img.Clone()
			require.NoError(t, Apply(serial, mask, WithMode(mode)))

			par := img.Clone()
			require.NoError(t, ApplyParallel(par, mask, WithMode(mode), WithWorkers(4)))

			require.Equal(t, serial.pix, par.pix,
				"mode %s size %dx%d", mode, size[0], size[1])
		}
	}
}

func TestApplyScalarMatchesDefault(t *testing.T) {
	img, mask := randomSurfaces(t, 123, 45, 3)

	def := img.Clone()
	require.NoError(t, Apply(def, mask))

	sc := img.Clone()
	require.NoError(t, Apply(sc, mask, WithScalar()))

	require.Equal(t, def.pix, sc.pix)
}

// TestDisjointRegionsConcurrent drives ApplyRegion from multiple goroutines
// over disjoint ranges of the same surfaces and checks the combined result
// matches one serial Apply over the whole buffer.
func TestDisjointRegionsConcurrent(t *testing.T) {
	img, mask := randomSurfaces(t, 333, 21, 17)

	want := img.Clone()
	require.NoError(t, Apply(want, mask))

	n := img.Len()
	bounds := []int{0, n / 4, n / 2, n - 3, n}

	var wg sync.WaitGroup
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, ApplyRegion(img, mask, lo, hi))
		}()
	}
	wg.Wait()

	require.Equal(t, want.pix, img.pix)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "luminance", MaskLuminance.String())
	assert.Equal(t, "alpha", MaskAlpha.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func BenchmarkApply(b *testing.B) {
	img, mask := randomSurfaces(b, 1920, 1080, 1)
	b.SetBytes(int64(img.Len() * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Apply(img, mask)
	}
}

func BenchmarkApplyScalar(b *testing.B) {
	img, mask := randomSurfaces(b, 1920, 1080, 1)
	b.SetBytes(int64(img.Len() * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Apply(img, mask, WithScalar())
	}
}

func BenchmarkApplyParallel(b *testing.B) {
	img, mask := randomSurfaces(b, 1920, 1080, 1)
	b.SetBytes(int64(img.Len() * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ApplyParallel(img, mask)
	}
}
