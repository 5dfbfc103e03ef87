package scene

import "testing"

func makeRGB565Header(width, height int, fill uint16) []uint16 {
	data := make([]uint16, 3+width*height)
	data[0] = imageFormatRGB565
	data[1] = uint16(width)
	data[2] = uint16(height)
	for i := 0; i < width*height; i++ {
		data[3+i] = fill
	}
	return data
}

func TestImageSizeAndRejectZero(t *testing.T) {
	data := makeRGB565Header(4, 2, 0x1234)
	if got := ImageSize(data); got != (Size{Width: 4, Height: 2}) {
		t.Fatalf("ImageSize = %+v", got)
	}

	s := NewScene(SceneOptions{})
	zero := []uint16{imageFormatRGB565, 0, 0}
	if n := CreateImage(s, zero); n != nil {
		t.Error("CreateImage with zero size should return nil")
	}
}

func TestImageTintAccessors(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateImage(s, makeRGB565Header(2, 2, 0xffff))
	if n == nil {
		t.Fatal("CreateImage returned nil")
	}
	SetImageTint(n, NewRGB(1, 2, 3))
	if got := ImageTint(n); got != NewRGB(1, 2, 3) {
		t.Errorf("ImageTint = %v, want set value", got)
	}
}

func TestRenderImageRGB565CopiesPixels(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	n := CreateImage(s, makeRGB565Header(2, 2, 0xabcd))
	AppendChild(root, n)

	Sequence(s)

	size := Size{Width: 8, Height: 8}
	fragment := make([]uint16, int(size.Width)*int(size.Height))
	Render(s, fragment, Point{0, 0}, size)

	if fragment[0] != 0xabcd {
		t.Errorf("fragment[0] = %#x, want 0xabcd", fragment[0])
	}
	if fragment[1] != 0xabcd {
		t.Errorf("fragment[1] = %#x, want 0xabcd", fragment[1])
	}
}

func TestRenderImageRGB565ClipsOffscreenAtRenderTime(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	n := CreateImage(s, makeRGB565Header(4, 4, 0x1111))
	SetPosition(n, Point{-100, -100})
	AppendChild(root, n)

	Sequence(s)

	size := Size{Width: 8, Height: 8}
	fragment := make([]uint16, int(size.Width)*int(size.Height))
	Render(s, fragment, Point{0, 0}, size)

	for i, px := range fragment {
		if px != 0 {
			t.Fatalf("fragment[%d] = %#x, want untouched (image fully clipped)", i, px)
		}
	}
}

func TestImageSkipsSequenceWhenFullyOffscreenWithCanvasSize(t *testing.T) {
	s := NewScene(SceneOptions{CanvasSize: Size{Width: 240, Height: 240}})
	root := Root(s)
	n := CreateImage(s, makeRGB565Header(4, 4, 0x1111))
	SetPosition(n, Point{-1000, -1000})
	AppendChild(root, n)

	Sequence(s)
	if s.renderHead != nil {
		t.Error("expected no render record for image fully outside a configured CanvasSize")
	}
}

func TestRenderImagePalette8(t *testing.T) {
	data := make([]uint16, 3+256+1)
	data[0] = imageFormatPalette8
	data[1] = 2
	data[2] = 1
	for i := 0; i < 256; i++ {
		data[3+i] = uint16(i)
	}
	data[3+256] = 0x0201 // pixel bytes [1, 2] little-endian within one uint16

	s := NewScene(SceneOptions{})
	root := Root(s)
	n := CreateImage(s, data)
	AppendChild(root, n)

	Sequence(s)

	size := Size{Width: 4, Height: 4}
	fragment := make([]uint16, int(size.Width)*int(size.Height))
	Render(s, fragment, Point{0, 0}, size)

	if fragment[0] != 1 {
		t.Errorf("fragment[0] = %d, want palette[1]=1", fragment[0])
	}
	if fragment[1] != 2 {
		t.Errorf("fragment[1] = %d, want palette[2]=2", fragment[1])
	}
}

func TestRenderImageRGB565A4FullyOpaque(t *testing.T) {
	width, height := 2, 1
	alphaCount := 1 // one uint16 holds 4 nibbles, enough for 2 pixels
	data := make([]uint16, 3+1+alphaCount+width*height)
	data[0] = imageFormatRGB565A4
	data[1] = uint16(width)
	data[2] = uint16(height)
	data[3] = uint16(alphaCount)
	data[4] = 0xff00 // both pixel-0 and pixel-1 nibbles set to 0xf (full alpha)
	data[5] = 0x1111
	data[6] = 0x2222

	s := NewScene(SceneOptions{})
	root := Root(s)
	n := CreateImage(s, data)
	SetImageTint(n, NewRGBA(255, 255, 255, MaxOpacity))
	AppendChild(root, n)

	Sequence(s)

	size := Size{Width: 4, Height: 4}
	fragment := make([]uint16, int(size.Width)*int(size.Height))
	Render(s, fragment, Point{0, 0}, size)

	if fragment[0] != 0x1111 {
		t.Errorf("fragment[0] = %#x, want fully opaque fg 0x1111", fragment[0])
	}
	if fragment[1] != 0x2222 {
		t.Errorf("fragment[1] = %#x, want fully opaque fg 0x2222", fragment[1])
	}
}
