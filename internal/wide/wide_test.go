package wide

import (
	"math"
	"testing"
)

func TestSplatF32(t *testing.T) {
	v := SplatF32(3.5)
	for i := range v {
		if v[i] != 3.5 {
			t.Errorf("element %d = %f, want 3.5", i, v[i])
		}
	}
}

func TestF32x8AddMul(t *testing.T) {
	a := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	b := F32x8{10, 20, 30, 40, 50, 60, 70, 80}

	sum := a.Add(b)
	prod := a.Mul(b)
	for i := range a {
		if want := a[i] + b[i]; sum[i] != want {
			t.Errorf("Add element %d = %f, want %f", i, sum[i], want)
		}
		if want := a[i] * b[i]; prod[i] != want {
			t.Errorf("Mul element %d = %f, want %f", i, prod[i], want)
		}
	}
}

func TestF32x8RoundToEven(t *testing.T) {
	v := F32x8{0.5, 1.5, 2.5, -0.5, 2.4, 2.6, 65024.5, 0}
	want := F32x8{0, 2, 2, 0, 2, 3, 65024, 0}

	got := v.RoundToEven()
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("element %d: RoundToEven(%f) = %f, want %f", i, v[i], got[i], want[i])
		}
	}
}

func TestU16x16MulDiv255(t *testing.T) {
	// The shift formula (x + 1 + (x >> 8)) >> 8 is exact floor division
	// by 255 over the full product range of two bytes. The alpha kernels
	// rely on this: batch and scalar paths share the formula, and both
	// must equal x/255 exactly, not approximately.
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			v := SplatU16(uint16(a)).Mul(SplatU16(uint16(b))).Div255()
			if want := uint16(a * b / 255); v[0] != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, v[0], want)
			}
		}
	}
}

func TestLumaBatchLoadStore(t *testing.T) {
	pix := make([]uint32, LumaWidth)
	mask := make([]uint32, LumaWidth)
	for i := range pix {
		pix[i] = uint32(i)<<24 | 0x00112233
		mask[i] = uint32(200+i)<<24 | uint32(i)<<16 | uint32(2*i)<<8 | uint32(3*i)
	}

	var b LumaBatch
	b.Load(pix, mask)
	for i := 0; i < LumaWidth; i++ {
		if b.PA[i] != float32(i) {
			t.Errorf("PA[%d] = %f, want %d", i, b.PA[i], i)
		}
		if b.MA[i] != float32(200+i) || b.MR[i] != float32(i) ||
			b.MG[i] != float32(2*i) || b.MB[i] != float32(3*i) {
			t.Errorf("mask lanes [%d] = (%f,%f,%f,%f)", i, b.MA[i], b.MR[i], b.MG[i], b.MB[i])
		}
	}

	var alpha F32x8
	for i := range alpha {
		alpha[i] = float32(100 + i)
	}
	b.StoreAlpha(alpha, pix)
	for i := range pix {
		if pix[i] != uint32(100+i)<<24|0x00112233 {
			t.Errorf("pixel %d = %08x after store", i, pix[i])
		}
	}
}

// TestStoreAlphaTruncates pins the unsigned-8-bit truncation of
// out-of-range alpha values.
func TestStoreAlphaTruncates(t *testing.T) {
	pix := make([]uint32, LumaWidth)
	for i := range pix {
		pix[i] = 0x00ABCDEF
	}

	var b LumaBatch
	alpha := F32x8{256, 257, 65025, 13005000, 0, 255, 511, 16581375}
	want := []uint32{0, 1, 1, 200, 0, 255, 255, 255}

	b.StoreAlpha(alpha, pix)
	for i := range pix {
		if got := pix[i] >> 24; got != want[i] {
			t.Errorf("alpha %f stored as %d, want %d", alpha[i], got, want[i])
		}
		if pix[i]&0x00FFFFFF != 0x00ABCDEF {
			t.Errorf("pixel %d rgb clobbered: %08x", i, pix[i])
		}
	}
}

func TestAlphaBatchLoadStore(t *testing.T) {
	pix := make([]uint32, AlphaWidth)
	mask := make([]uint32, AlphaWidth)
	for i := range pix {
		pix[i] = uint32(i*16)<<24 | 0x00445566
		mask[i] = uint32(255-i)<<24 | 0x00FFFFFF
	}

	var b AlphaBatch
	b.Load(pix, mask)
	for i := 0; i < AlphaWidth; i++ {
		if b.PA[i] != uint16(i*16) || b.MA[i] != uint16(255-i) {
			t.Errorf("lanes [%d] = (%d, %d)", i, b.PA[i], b.MA[i])
		}
	}

	b.StoreAlpha(SplatU16(7), pix)
	for i := range pix {
		if pix[i] != 7<<24|0x00445566 {
			t.Errorf("pixel %d = %08x after store", i, pix[i])
		}
	}
}

func TestRoundAlpha(t *testing.T) {
	tests := []struct {
		in   float32
		want uint32
	}{
		{0, 0},
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{254.4999, 254},
		{65024.5, 65024},
		{16581375, 16581375},
	}
	for _, tt := range tests {
		if got := RoundAlpha(tt.in); got != tt.want {
			t.Errorf("RoundAlpha(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if math.RoundToEven(2.5) != 2 {
		t.Error("stdlib rounding rule changed")
	}
}

func BenchmarkF32x8Mul(b *testing.B) {
	x := SplatF32(0.2125)
	y := SplatF32(254)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkU16x16MulDiv255(b *testing.B) {
	x := SplatU16(200)
	y := SplatU16(128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y).Div255()
	}
}
