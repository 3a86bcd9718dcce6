package clipmask

import (
	"image"
	"image/color"
)

// FromImage converts any image.Image into a Surface of packed ARGB words.
//
// *image.RGBA and *image.NRGBA take a direct per-byte path; other types go
// through the color.Color interface. Channel values are truncated to 8 bits.
// The returned surface owns its pixels; the source image is not retained.
// Returns nil when src has empty bounds, mirroring NewSurface.
func FromImage(src image.Image) *Surface {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	s := NewSurface(w, h)
	if s == nil {
		return nil
	}

	switch img := src.(type) {
	case *image.RGBA:
		fromByteOrder(s, img.Pix, img.Stride, w, h)
	case *image.NRGBA:
		fromByteOrder(s, img.Pix, img.Stride, w, h)
	default:
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := src.At(x, y).RGBA()
				s.pix[i] = (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
				i++
			}
		}
	}
	return s
}

// fromByteOrder packs R,G,B,A byte quads into ARGB words.
func fromByteOrder(s *Surface, pix []uint8, stride, w, h int) {
	i := 0
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			o := x * 4
			s.pix[i] = uint32(row[o+3])<<24 | uint32(row[o])<<16 |
				uint32(row[o+1])<<8 | uint32(row[o+2])
			i++
		}
	}
}

// ToNRGBA converts the surface back into a straight-alpha image.
// The ARGB word layout is unpacked; no alpha un-premultiplication happens,
// matching FromImage's direct path.
func (s *Surface) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	i := 0
	for y := 0; y < s.height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < s.width; x++ {
			p := s.pix[i]
			o := x * 4
			row[o] = uint8(p >> 16)
			row[o+1] = uint8(p >> 8)
			row[o+2] = uint8(p)
			row[o+3] = uint8(p >> 24)
			i++
		}
	}
	return img
}

// ARGB packs four 8-bit channels into an ARGB word.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ARGBColor packs a color.Color into an ARGB word, truncating to 8 bits.
func ARGBColor(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
}
