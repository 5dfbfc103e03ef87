package scene

import "fmt"

// Color is a unified 32-bit color word. It holds either an RGBA color
// (8/8/8 components plus opacity) or an HSVA color (12-bit hue, 6-bit
// saturation, 6-bit value, plus opacity), discriminated by the isHSV flag
// carried alongside the word. Opacity is 0..32 (MaxOpacity), not 0..255,
// and occupies the word's low 6 bits.
type Color struct {
	word  uint32
	isHSV bool
}

// MaxOpacity is the maximum value of a Color's opacity field.
const MaxOpacity = 0x20

// Reserved color words from original_source/include/firefly-color.h.
// The box rasterizer recognizes DarkerRGBA50 and DarkerRGBA75 as "darken
// destination by bit-masking, ignore source color"; DarkerRGBA25 has no
// bit-mask path and composites as an ordinary opacity-0 color, though
// IsTransparent does not report it as transparent. ColorTransparent is
// the all-zero word.
var (
	DarkerRGBA25    = Color{word: 0x18000000}
	DarkerRGBA50    = Color{word: 0x10000000}
	DarkerRGBA75    = Color{word: 0x08000000}
	ColorTransparent = Color{word: 0}
)

// RGB describes an RGBA color in its native 8-bit-per-channel depth plus
// an opacity in 0..32.
type RGB struct {
	R, G, B uint8
	Opacity uint8 // 0..32
}

// HSV describes an HSVA color in its native depth: 12-bit hue in
// [0,3959], 6-bit saturation and value, opacity in 0..32.
type HSV struct {
	H       uint16 // 0..3959
	S, V    uint8  // 0..63
	Opacity uint8  // 0..32
}

func clampU8(v, max int) uint8 {
	if v < 0 {
		return 0
	}
	if v > max {
		return uint8(max)
	}
	return uint8(v)
}

// NewRGB constructs an opaque RGBA color from 8-bit components.
func NewRGB(r, g, b uint8) Color {
	return NewRGBA(r, g, b, MaxOpacity)
}

// NewRGBA constructs an RGBA color; opacity is clamped to [0,32].
func NewRGBA(r, g, b, opacity uint8) Color {
	o := clampU8(int(opacity), MaxOpacity)
	return Color{word: uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(o)}
}

// NewHSV constructs an opaque HSVA color; hue wraps into [0,3959].
func NewHSV(h int, s, v uint8) Color {
	return NewHSVA(h, s, v, MaxOpacity)
}

// NewHSVA constructs an HSVA color; hue wraps into [0,3959], s/v clamp to
// [0,63], opacity clamps to [0,32].
func NewHSVA(h int, s, v, opacity uint8) Color {
	const hueRange = 3960
	h = h % hueRange
	if h < 0 {
		h += hueRange
	}
	sv := clampU8(int(s), 63)
	vv := clampU8(int(v), 63)
	o := clampU8(int(opacity), MaxOpacity)
	word := uint32(h)<<20 | uint32(sv)<<14 | uint32(vv)<<8 | uint32(o)
	return Color{word: word, isHSV: true}
}

// ParseRGB returns c's components in native RGBA depth, converting from
// HSVA first if necessary.
func ParseRGB(c Color) RGB {
	if !c.isHSV {
		return RGB{
			R:       uint8(c.word >> 24),
			G:       uint8(c.word >> 16),
			B:       uint8(c.word >> 8),
			Opacity: uint8(c.word & 0x3f),
		}
	}
	hsv := ParseHSV(c)
	r, g, b := HSVToRGB(hsv.H, hsv.S, hsv.V)
	return RGB{R: r, G: g, B: b, Opacity: hsv.Opacity}
}

// ParseHSV returns c's components in native HSVA depth, converting from
// RGBA first if necessary.
func ParseHSV(c Color) HSV {
	if c.isHSV {
		return HSV{
			H:       uint16((c.word >> 20) & 0xfff),
			S:       uint8((c.word >> 14) & 0x3f),
			V:       uint8((c.word >> 8) & 0x3f),
			Opacity: uint8(c.word & 0x3f),
		}
	}
	rgb := ParseRGB(c)
	h, s, v := RGBToHSV(rgb.R, rgb.G, rgb.B)
	return HSV{H: h, S: s, V: v, Opacity: rgb.Opacity}
}

// RGBToHSV converts 8-bit RGB to 12-bit hue / 6-bit saturation-value,
// using the standard six-sector algorithm with max-component tie-breaks
// favoring R before G before B.
func RGBToHSV(r, g, b uint8) (h uint16, s, v uint8) {
	rf, gf, bf := int(r), int(g), int(b)
	maxc := rf
	if gf > maxc {
		maxc = gf
	}
	if bf > maxc {
		maxc = bf
	}
	minc := rf
	if gf < minc {
		minc = gf
	}
	if bf < minc {
		minc = bf
	}
	delta := maxc - minc

	v = uint8((maxc * 63) / 255)
	if maxc == 0 {
		return 0, 0, 0
	}
	s = uint8((delta * 63) / maxc)
	if delta == 0 {
		return 0, s, v
	}

	var hue float64
	switch {
	case maxc == rf:
		hue = 60 * (float64(gf-bf) / float64(delta))
	case maxc == gf:
		hue = 60 * (2 + float64(bf-rf)/float64(delta))
	default:
		hue = 60 * (4 + float64(rf-gf)/float64(delta))
	}
	if hue < 0 {
		hue += 360
	}
	h = uint16((hue / 360) * 3960)
	return h, s, v
}

// HSVToRGB converts 12-bit hue / 6-bit saturation-value to 8-bit RGB.
func HSVToRGB(h uint16, s, v uint8) (r, g, b uint8) {
	if s == 0 {
		gray := uint8((int(v) * 255) / 63)
		return gray, gray, gray
	}

	hf := (float64(h) / 3960) * 360
	sf := float64(s) / 63
	vf := float64(v) / 63

	sector := hf / 60
	i := int(sector)
	frac := sector - float64(i)

	p := vf * (1 - sf)
	q := vf * (1 - sf*frac)
	t := vf * (1 - sf*(1-frac))

	var rf, gf, bf float64
	switch i % 6 {
	case 0:
		rf, gf, bf = vf, t, p
	case 1:
		rf, gf, bf = q, vf, p
	case 2:
		rf, gf, bf = p, vf, t
	case 3:
		rf, gf, bf = p, q, vf
	case 4:
		rf, gf, bf = t, p, vf
	default:
		rf, gf, bf = vf, p, q
	}
	return uint8(rf*255 + 0.5), uint8(gf*255 + 0.5), uint8(bf*255 + 0.5)
}

// RGB16 returns c as RGB565.
func RGB16(c Color) uint16 {
	rgb := ParseRGB(c)
	return (uint16(rgb.R) >> 3 << 11) | (uint16(rgb.G) >> 2 << 5) | (uint16(rgb.B) >> 3)
}

// RGB24 returns c as 0x00RRGGBB.
func RGB24(c Color) uint32 {
	rgb := ParseRGB(c)
	return uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// RGBA24 returns c as 0xAARRGGBB, with the opacity (clamped to 31) scaled
// via FixedBitsN(5, ...) and shifted right by 8, saturating at 0xff, so
// opacities 31 and 32 both give 0xff.
func RGBA24(c Color) uint32 {
	rgb := ParseRGB(c)
	op := uint32(rgb.Opacity)
	if op > 31 {
		op = 31
	}
	a8 := uint32(FixedBitsN(5, op)) >> 8
	if a8 > 0xff {
		a8 = 0xff
	}
	return a8<<24 | uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// IsTransparent reports whether c has zero opacity.
func IsTransparent(c Color) bool {
	return c.word&0x3f == 0 && c != DarkerRGBA25 && c != DarkerRGBA50 && c != DarkerRGBA75
}

// Lerp interpolates between two RGBA colors at t in [0, FM1]. If either
// input is HSVA it is first coerced to RGBA.
func Lerp(c0, c1 Color, t Fixed) Color {
	a := ParseRGB(c0)
	b := ParseRGB(c1)
	lerp8 := func(x, y uint8) uint8 {
		return uint8(int32(x) + Scalar(int32(y)-int32(x), t))
	}
	return NewRGBA(
		lerp8(a.R, b.R),
		lerp8(a.G, b.G),
		lerp8(a.B, b.B),
		lerp8(a.Opacity, b.Opacity),
	)
}

// LerpColorRamp partitions [0, FM1] into len(colors)-1 equal segments and
// interpolates within the segment containing t; at segment boundaries it
// returns the stop color exactly. colors must have at least 2 entries.
func LerpColorRamp(colors []Color, t Fixed) Color {
	segments := len(colors) - 1
	if segments <= 0 {
		if len(colors) == 1 {
			return colors[0]
		}
		return ColorTransparent
	}
	if t <= 0 {
		return colors[0]
	}
	if t >= FM1 {
		return colors[segments]
	}
	segLen := Div(FM1, ToFixed(int32(segments)))
	idx := int(t / segLen)
	if idx >= segments {
		idx = segments - 1
	}
	segStart := Mul(ToFixed(int32(idx)), segLen)
	localT := Div(t-segStart, segLen)
	return Lerp(colors[idx], colors[idx+1], localT)
}

// Blend composites fg over bg using premultiplied-alpha over-compositing:
// result = fg.opacity*fg + (1-fg.opacity)*bg, component-wise.
func Blend(fg, bg Color) Color {
	f := ParseRGB(fg)
	b := ParseRGB(bg)
	op := uint32(f.Opacity)
	if op > 31 {
		op = 31
	}
	alpha := FixedBitsN(5, op)
	inv := FM1 - alpha
	blend8 := func(fgc, bgc uint8) uint8 {
		return uint8((Mul(ToFixed(int32(fgc)), alpha) + Mul(ToFixed(int32(bgc)), inv)) >> 16)
	}
	return NewRGBA(blend8(f.R, b.R), blend8(f.G, b.G), blend8(f.B, b.B), MaxOpacity)
}

// SprintColor formats c as "RGB(r/255, g/255, b/255, a/32)" or
// "HSV(h, s/63, v/63, a/32)" depending on its native space.
func SprintColor(c Color) string {
	if c.isHSV {
		hsv := ParseHSV(c)
		return fmt.Sprintf("HSV(%d, %d/63, %d/63, %d/32)", hsv.H, hsv.S, hsv.V, hsv.Opacity)
	}
	rgb := ParseRGB(c)
	return fmt.Sprintf("RGB(%d/255, %d/255, %d/255, %d/32)", rgb.R, rgb.G, rgb.B, rgb.Opacity)
}
