package argb

import (
	"image/color"
	"strconv"
)

// Color is either Empty or a concrete ARGB value. The set of implementations is
// closed; a nil Color (or a nil *ARGB) is treated as Empty, and *ARGB behaves
// like the ARGB it points to.
type Color interface {
	IsEmpty() bool
	String() string
	appendText(b []byte) []byte
	channels() (ARGB, bool)
}

// EmptyColor is the "no color specified" variant. Use Empty.
type EmptyColor struct{}

// Empty is the distinguished empty color.
var Empty Color = EmptyColor{}

func (EmptyColor) IsEmpty() bool  { return true }
func (EmptyColor) String() string { return EmptyToken }

func (EmptyColor) appendText(b []byte) []byte { return append(b, EmptyToken...) }
func (EmptyColor) channels() (ARGB, bool)     { return ARGB{}, false }

// ARGB is a concrete color with four byte channels.
type ARGB struct {
	A, R, G, B uint8
}

var (
	_ Color       = ARGB{}
	_ color.Color = ARGB{}
)

// New returns a concrete color. It never yields Empty.
func New(a, r, g, b uint8) ARGB {
	return ARGB{A: a, R: r, G: g, B: b}
}

func (ARGB) IsEmpty() bool    { return false }
func (c ARGB) String() string { return string(c.appendText(make([]byte, 0, len(argbPrefix)+20))) }

func (c ARGB) channels() (ARGB, bool) { return c, true }

// Packed returns the color as 0xAARRGGBB.
func (c ARGB) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromPacked is the inverse of ARGB.Packed.
func FromPacked(v uint32) ARGB {
	return ARGB{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// NRGBA returns the same channels as a non-premultiplied image/color value.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any image/color value into a concrete color.
// ARGB and color.NRGBA convert exactly; other models go through premultiplied
// RGBA and may lose precision at low alpha.
func FromColor(c color.Color) ARGB {
	switch v := c.(type) {
	case ARGB:
		return v
	case *ARGB:
		if v != nil {
			return *v
		}
	case color.NRGBA:
		return ARGB{A: v.A, R: v.R, G: v.G, B: v.B}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Concrete returns the channels of c and true, or false when c is Empty or nil.
func Concrete(c Color) (ARGB, bool) {
	if c == nil {
		return ARGB{}, false
	}
	if p, ok := c.(*ARGB); ok && p == nil {
		return ARGB{}, false
	}
	return c.channels()
}

// IsEmpty reports whether c is Empty or nil.
func IsEmpty(c Color) bool {
	_, ok := Concrete(c)
	return !ok
}

// Normalize returns the canonical variant of c: Empty or an ARGB value.
func Normalize(c Color) Color {
	if v, ok := Concrete(c); ok {
		return v
	}
	return Empty
}

// appendText writes the canonical concrete form: "ARGB ( a / r / g / b)".
func (c ARGB) appendText(b []byte) []byte {
	b = append(b, argbPrefix...)
	b = strconv.AppendUint(b, uint64(c.A), 10)
	b = append(b, channelSep...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, channelSep...)
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, channelSep...)
	b = strconv.AppendUint(b, uint64(c.B), 10)
	return append(b, ')')
}
