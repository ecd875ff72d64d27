package rfbclient

import "testing"

// TestDecodeTight_Fill is scenario 3 (§8): P3 fill idempotence.
func TestDecodeTight_Fill(t *testing.T) {
	pixel := rgb24ToPixel(0x12, 0x34, 0x56)
	var pixelBytes [4]byte
	putNativePixel(pixelBytes[:], pixel)

	data := append([]byte{0x80}, pixelBytes[:]...)
	c := testConnection(data, 10, 10)

	c.screen.Lock()
	err := c.decodeTight(Rect{X: 0, Y: 0, W: 10, H: 10})
	c.screen.Unlock()
	if err != nil {
		t.Fatalf("decodeTight: %v", err)
	}

	c.screen.RLock()
	defer c.screen.RUnlock()
	for y := 0; y < 10; y++ {
		row := c.screen.ScanLine(y)
		for x := 0; x < 10; x++ {
			if row[x] != pixel {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, row[x], pixel)
			}
		}
	}
}

// TestDecodeTight_Palette2 is scenario 4 (§8): P5 palette correctness.
func TestDecodeTight_Palette2(t *testing.T) {
	black := rgb24ToPixel(0, 0, 0)
	white := rgb24ToPixel(0xff, 0xff, 0xff)
	var blackBytes, whiteBytes [4]byte
	putNativePixel(blackBytes[:], black)
	putNativePixel(whiteBytes[:], white)

	data := []byte{0x40, 1 /* filter id = Palette */, 1 /* numColors-1 = 1 -> 2 colors */}
	data = append(data, blackBytes[:]...)
	data = append(data, whiteBytes[:]...)
	data = append(data, 0xA0) // row bits 1,0,1 MSB-first, padded

	c := testConnection(data, 3, 1)
	c.screen.Lock()
	err := c.decodeTight(Rect{X: 0, Y: 0, W: 3, H: 1})
	c.screen.Unlock()
	if err != nil {
		t.Fatalf("decodeTight: %v", err)
	}

	c.screen.RLock()
	defer c.screen.RUnlock()
	row := c.screen.ScanLine(0)
	want := [3]uint32{white, black, white}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("pixel %d = %#x, want %#x", i, row[i], w)
		}
	}
}

// TestApplyGradientFilter_Neutral is P4: an all-zero delta stream
// against a zeroed previous row decodes to all-zero, and the
// previous-row buffer equals the last scan line afterward.
func TestApplyGradientFilter_Neutral(t *testing.T) {
	c := testConnection(nil, 0, 0)
	c.tightPrevRow = make([]uint16, 2048*3)
	w, h := 4, 3
	c.initGradientFilter(w)

	data := make([]byte, w*h*4) // all-zero deltas
	pixels := c.applyGradientFilter(data, h)

	for i, p := range pixels {
		if p != 0 {
			t.Fatalf("pixel %d = %#x, want 0", i, p)
		}
	}
	for i := 0; i < w*3; i++ {
		if c.tightPrevRow[i] != 0 {
			t.Fatalf("tightPrevRow[%d] = %d, want 0", i, c.tightPrevRow[i])
		}
	}
}
