package clipmask

// Mode selects which mask channels derive the new image alpha,
// mirroring the CSS mask-type property.
type Mode int

const (
	// MaskLuminance scales the image alpha by the mask's alpha-weighted
	// Rec.709 luma. This is the SVG default.
	MaskLuminance Mode = iota

	// MaskAlpha scales the image alpha by the mask's alpha channel alone.
	MaskAlpha
)

// String returns the CSS keyword for the mode.
func (m Mode) String() string {
	switch m {
	case MaskLuminance:
		return "luminance"
	case MaskAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}
