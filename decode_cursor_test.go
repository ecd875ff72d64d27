package rfbclient

import "testing"

// TestDecodeXCursor_FullConversion guards the resolved source bug (§9
// Design Note): every pixel of the w*h index array must be converted,
// not just up to the first occurrence of a particular bit.
func TestDecodeXCursor_FullConversion(t *testing.T) {
	w, h := 9, 1 // spans two bitmap bytes, so a stray early-exit would
	// leave the second byte's pixels unconverted.

	fg := []byte{0xff, 0xff, 0xff}
	bg := []byte{0x00, 0x00, 0x00}
	bitmap := []byte{0xff, 0x80} // all 9 bits set (bits 8 is top bit of byte 2)
	mask := []byte{0xff, 0x80}   // fully opaque

	var data []byte
	data = append(data, fg...)
	data = append(data, bg...)
	data = append(data, bitmap...)
	data = append(data, mask...)

	c := testConnection(data, w, h)
	if err := c.decodeXCursor(Rect{X: 3, Y: 4, W: uint16(w), H: uint16(h)}); err != nil {
		t.Fatalf("decodeXCursor: %v", err)
	}

	img, hotspot := c.cursor.Shape()
	if hotspot != (Point{X: 3, Y: 4}) {
		t.Errorf("hotspot = %v, want (3,4)", hotspot)
	}
	for x := 0; x < w; x++ {
		r, g, b, a := img.At(x, 0).RGBA()
		if a>>8 != 0xff {
			t.Fatalf("pixel %d alpha = %#x, want opaque", x, a)
		}
		if r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
			t.Errorf("pixel %d = (%d,%d,%d), want foreground white — full width·height conversion required", x, r>>8, g>>8, b>>8)
		}
	}
}

// TestDecodeRichCursor_Mask confirms the mask's 1-bit alpha plane is
// applied per pixel, row-padded to whole bytes.
func TestDecodeRichCursor_Mask(t *testing.T) {
	w, h := 3, 1
	var pixelBytes []byte
	for i := 0; i < w; i++ {
		var b [4]byte
		putNativePixel(b[:], rgb24ToPixel(uint8(i*10), 0, 0))
		pixelBytes = append(pixelBytes, b[:]...)
	}
	mask := []byte{0b101_00000} // opaque, transparent, opaque

	data := append(pixelBytes, mask...)
	c := testConnection(data, w, h)
	if err := c.decodeRichCursor(Rect{X: 0, Y: 0, W: uint16(w), H: uint16(h)}); err != nil {
		t.Fatalf("decodeRichCursor: %v", err)
	}

	img, _ := c.cursor.Shape()
	wantAlpha := []bool{true, false, true}
	for x := 0; x < w; x++ {
		_, _, _, a := img.At(x, 0).RGBA()
		opaque := a>>8 == 0xff
		if opaque != wantAlpha[x] {
			t.Errorf("pixel %d opaque = %v, want %v", x, opaque, wantAlpha[x])
		}
	}
}

// TestDecodeCursorPos_UnionRegion covers the cursor-position pseudo-rect
// (§4.4) with no shape set: both bounding boxes are empty, so the
// returned union is the zero Rect, and the position is updated.
func TestDecodeCursorPos_UnionRegion(t *testing.T) {
	c := testConnection(nil, 100, 100)
	shapeData := []byte{1, 1, 1, 1, 1, 1} // 3-byte fg/bg, irrelevant here
	_ = shapeData
	c.cursor.SetShape(nil, Point{})

	bounds := c.decodeCursorPos(Rect{X: 10, Y: 10})
	if bounds != (Rect{}) {
		// with a nil shape, boundingBox is always the zero Rect, so the
		// union of old and new should also be zero.
		t.Errorf("bounds = %+v, want zero Rect with no shape set", bounds)
	}
	if c.cursor.Position() != (Point{X: 10, Y: 10}) {
		t.Errorf("position = %v, want (10,10)", c.cursor.Position())
	}
}
