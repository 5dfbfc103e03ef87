package scene

import "fmt"

// Image format tags, from data[0]'s low byte (low nibble for the two
// RGB565 variants, full byte for Palette-8). See original_source's
// node-image.c.
const (
	imageFormatRGB565   = 0x04
	imageFormatRGB565A4 = 0x05
	imageFormatPalette8 = 0x38

	// ufixed:1.21 "one", the product of a ufixed:1.16 per-pixel alpha
	// (via FixedBitsN(4, ...)) and a ufixed:1.5 tint opacity (0..32).
	ufixed121One = 0x200000
)

// imageState holds an image node's header'd pixel buffer and tint.
// The buffer is an external collaborator (§1): this module interprets
// its header and dispatches to one of three raster paths but never
// owns or decodes a wider image format.
type imageState struct {
	data []uint16
	tint Color
}

type imageRenderState struct {
	position Point
	data     []uint16
	tint     Color
}

var imageVTable = &nodeVTable{
	name:   "Image",
	render: imageRenderFunc,
}

// imageSequence and imageDump refer back to imageVTable, so they are
// attached in init to avoid a package initialization cycle.
func init() {
	imageVTable.sequence = imageSequence
	imageVTable.dump = imageDump
}

// ImageSize reads width/height from an image header without validating
// the rest of the payload. Returns a zero Size if data is too short.
func ImageSize(data []uint16) Size {
	if len(data) < 3 {
		return Size{}
	}
	return Size{Width: uint16(data[1]), Height: uint16(data[2])}
}

// CreateImage creates an image node from a header'd pixel buffer.
// Returns nil if data's declared size is zero, mirroring
// ffx_scene_createImage's null-on-bad-size behavior.
func CreateImage(s *Scene, data []uint16) *node {
	size := ImageSize(data)
	if size.Width == 0 || size.Height == 0 {
		diagnostic("Image: zero-sized header, rejecting")
		return nil
	}
	return createNode(s, imageVTable, &imageState{data: data, tint: NewRGBA(255, 255, 255, MaxOpacity)})
}

// ImageData returns n's current pixel buffer.
func ImageData(n *node) []uint16 {
	st, ok := getState(n, imageVTable)
	if !ok {
		return nil
	}
	return st.(*imageState).data
}

// SetImageData replaces n's pixel buffer, rejecting a buffer with a
// zero declared size.
func SetImageData(n *node, data []uint16) {
	st, ok := getState(n, imageVTable)
	if !ok {
		return
	}
	size := ImageSize(data)
	if size.Width == 0 || size.Height == 0 {
		diagnostic("Image: setData rejected zero-sized header")
		return
	}
	st.(*imageState).data = data
}

// ImageTint returns n's current tint color.
func ImageTint(n *node) Color {
	st, ok := getState(n, imageVTable)
	if !ok {
		return ColorTransparent
	}
	return st.(*imageState).tint
}

func setImageTintDirect(n *node, c Color) {
	st, ok := getState(n, imageVTable)
	if !ok {
		return
	}
	st.(*imageState).tint = c
}

// SetImageTint sets n's tint directly, or attaches a color action while
// n is capturing.
func SetImageTint(n *node, tint Color) {
	st, ok := getState(n, imageVTable)
	if !ok {
		return
	}
	animateColor(n, st.(*imageState).tint, tint, setImageTintDirect)
}

func imageSequence(n *node, worldPos Point) {
	st, ok := getState(n, imageVTable)
	if !ok {
		return
	}
	is := st.(*imageState)
	worldPos = Point{worldPos.X + n.position.X, worldPos.Y + n.position.Y}

	if len(is.data) < 3 {
		return
	}
	size := ImageSize(is.data)
	if n.scene.fullyOffscreen(worldPos, size) {
		return
	}

	n.scene.appendRender(imageRenderFunc, &imageRenderState{
		position: worldPos,
		data:     is.data,
		tint:     is.tint,
	})
}

func imageRenderFunc(state any, fragment []uint16, origin Point, size Size) {
	rs := state.(*imageRenderState)
	if len(rs.data) < 3 {
		return
	}
	tag := rs.data[0]
	switch {
	case tag&0x0f == imageFormatRGB565A4:
		renderImageRGB565A4(rs, fragment, origin, size)
	case tag&0x0f == imageFormatRGB565:
		renderImageRGB565(rs, fragment, origin, size)
	case tag&0xff == imageFormatPalette8:
		renderImagePalette8(rs, fragment, origin, size)
	default:
		diagnostic("Image: unknown format tag %#x, skipping", tag)
	}
}

func renderImageRGB565(rs *imageRenderState, fragment []uint16, origin Point, size Size) {
	data := rs.data
	width := int(data[1])
	height := int(data[2])
	clip := ComputeClip(rs.position, Size{Width: uint16(width), Height: uint16(height)}, origin, size)
	if clip.Width == 0 {
		return
	}
	pixels := data[3:]

	for y := 0; y < int(clip.Height); y++ {
		outRow := (int(clip.VpY)+y)*int(size.Width) + int(clip.VpX)
		inRow := (int(clip.Y)+y)*width + int(clip.X)
		for x := 0; x < int(clip.Width); x++ {
			if outRow+x < 0 || outRow+x >= len(fragment) {
				continue
			}
			if inRow+x < 0 || inRow+x >= len(pixels) {
				continue
			}
			fragment[outRow+x] = pixels[inRow+x]
		}
	}
}

func renderImageRGB565A4(rs *imageRenderState, fragment []uint16, origin Point, size Size) {
	data := rs.data
	width := int(data[1])
	height := int(data[2])
	clip := ComputeClip(rs.position, Size{Width: uint16(width), Height: uint16(height)}, origin, size)
	if clip.Width == 0 {
		return
	}

	alphaTable := data[3:]
	if len(alphaTable) == 0 {
		return
	}
	alphaCount := int(alphaTable[0])
	alpha := alphaTable[1:]
	pixels := data[3+alphaCount+1:]

	tintOpacity := uint32(ParseRGB(rs.tint).Opacity)

	for y := 0; y < int(clip.Height); y++ {
		outRow := (int(clip.VpY)+y)*int(size.Width) + int(clip.VpX)
		inRow := (int(clip.Y)+y)*width + int(clip.X)
		for x := 0; x < int(clip.Width); x++ {
			outIdx := outRow + x
			inIdx := inRow + x
			if outIdx < 0 || outIdx >= len(fragment) || inIdx < 0 || inIdx >= len(pixels) {
				continue
			}
			fg := pixels[inIdx]

			nibbleIdx := inIdx / 4
			if nibbleIdx >= len(alpha) {
				continue
			}
			shift := uint(12 - 4*(inIdx%4))
			a4 := uint32(alpha[nibbleIdx]>>shift) & 0x0f

			fga := uint32(FixedBitsN(4, a4)) * tintOpacity
			if fga >= ufixed121One {
				fragment[outIdx] = fg
			} else if fga != 0 {
				bg := fragment[outIdx]
				bgR := int32(bg >> 11)
				bgG := int32(bg>>5) & 0x3f
				bgB := int32(bg) & 0x1f

				fgR := int32(fg >> 11)
				fgG := int32(fg>>5) & 0x3f
				fgB := int32(fg) & 0x1f

				fgaInv := uint32(ufixed121One) - fga

				blendR := ((int32(fga)*fgR + int32(fgaInv)*bgR) >> 21)
				blendG := ((int32(fga)*fgG + int32(fgaInv)*bgG) >> 21)
				blendB := ((int32(fga)*fgB + int32(fgaInv)*bgB) >> 21)

				fragment[outIdx] = uint16(blendR)<<11 | uint16(blendG)<<5 | uint16(blendB)
			}
		}
	}
}

func renderImagePalette8(rs *imageRenderState, fragment []uint16, origin Point, size Size) {
	data := rs.data
	width := int(data[1])
	height := int(data[2])
	clip := ComputeClip(rs.position, Size{Width: uint16(width), Height: uint16(height)}, origin, size)
	if clip.Width == 0 {
		return
	}

	if len(data) < 3+256 {
		return
	}
	palette := data[3 : 3+256]
	pixelWords := data[3+256:]
	pixels := u16ToBytes(pixelWords)

	for y := 0; y < int(clip.Height); y++ {
		outRow := (int(clip.VpY)+y)*int(size.Width) + int(clip.VpX)
		inRow := (int(clip.Y)+y)*width + int(clip.X)
		for x := 0; x < int(clip.Width); x++ {
			outIdx := outRow + x
			inIdx := inRow + x
			if outIdx < 0 || outIdx >= len(fragment) || inIdx < 0 || inIdx >= len(pixels) {
				continue
			}
			fragment[outIdx] = palette[pixels[inIdx]]
		}
	}
}

// u16ToBytes reinterprets a uint16 slice as bytes, little-endian,
// matching the original firmware's in-place (uint8_t*) cast of the
// trailing pixel words in a Palette-8 image.
func u16ToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		out[2*i] = byte(w)
		out[2*i+1] = byte(w >> 8)
	}
	return out
}

func imageDump(n *node, depth int) {
	st, ok := getState(n, imageVTable)
	if !ok {
		return
	}
	is := st.(*imageState)
	size := ImageSize(is.data)
	dumpLine(depth, n, fmt.Sprintf("size=%dx%d", size.Width, size.Height))
}
