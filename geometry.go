package scene

// Point is a signed 2D coordinate in framebuffer pixels.
type Point struct {
	X, Y int16
}

// Size is an unsigned 2D extent in framebuffer pixels.
type Size struct {
	Width, Height uint16
}

// Clip describes how an object of some size, positioned at some origin,
// projects onto a viewport fragment. (X, Y) are offsets into the source
// image/geometry; (VpX, VpY) are offsets into the destination fragment;
// (Width, Height) is the clipped extent. Width == 0 means fully clipped.
type Clip struct {
	X, Y     int16
	VpX, VpY int16
	Width    int16
	Height   int16
}

// ComputeClip clips an object of size objSize positioned at objOrigin
// (in the same coordinate space as the fragment) against a fragment of
// size vpSize positioned at vpOrigin. Ported from
// original_source/src/utils.c's ffx_scene_clip.
func ComputeClip(objOrigin Point, objSize Size, vpOrigin Point, vpSize Size) Clip {
	left := int32(objOrigin.X) - int32(vpOrigin.X)
	top := int32(objOrigin.Y) - int32(vpOrigin.Y)
	width := int32(objSize.Width)
	height := int32(objSize.Height)

	var x, y int32
	vpX, vpY := left, top

	if vpX < 0 {
		x = -vpX
		width += vpX
		vpX = 0
	}
	if vpY < 0 {
		y = -vpY
		height += vpY
		vpY = 0
	}
	if vpX+width > int32(vpSize.Width) {
		width = int32(vpSize.Width) - vpX
	}
	if vpY+height > int32(vpSize.Height) {
		height = int32(vpSize.Height) - vpY
	}

	if width <= 0 || height <= 0 {
		return Clip{}
	}

	return Clip{
		X:      int16(x),
		Y:      int16(y),
		VpX:    int16(vpX),
		VpY:    int16(vpY),
		Width:  int16(width),
		Height: int16(height),
	}
}
