package rfbclient

import "testing"

// TestDecodeCoRRE_Minimal is scenario 1 (§8): a background fill plus one
// subrectangle.
func TestDecodeCoRRE_Minimal(t *testing.T) {
	bg := rgb24ToPixel(0, 0xff, 0) // 0x00FF00
	fg := rgb24ToPixel(0xff, 0, 0) // 0xFF0000

	var data []byte
	data = append(data, 0, 0, 0, 1) // nSubrects = 1
	var bgBytes [4]byte
	putNativePixel(bgBytes[:], bg)
	data = append(data, bgBytes[:]...)

	var fgBytes [4]byte
	putNativePixel(fgBytes[:], fg)
	data = append(data, fgBytes[:]...)
	data = append(data, 1, 0, 1, 1) // x=1, y=0, w=1, h=1

	c := testConnection(data, 2, 2)
	c.screen.Lock()
	err := c.decodeCoRRE(Rect{X: 0, Y: 0, W: 2, H: 2})
	c.screen.Unlock()
	if err != nil {
		t.Fatalf("decodeCoRRE: %v", err)
	}

	c.screen.RLock()
	defer c.screen.RUnlock()
	want := [2][2]uint32{{bg, fg}, {bg, bg}}
	for y := 0; y < 2; y++ {
		row := c.screen.ScanLine(y)
		for x := 0; x < 2; x++ {
			if row[x] != want[y][x] {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, row[x], want[y][x])
			}
		}
	}
}

// TestDecodeRRE_Unsupported confirms plain RRE is a fatal decode error
// (§1 Non-goals).
func TestDecodeRRE_Unsupported(t *testing.T) {
	c := testConnection(nil, 2, 2)
	if err := c.decodeRRE(Rect{W: 1, H: 1}); !IsKind(err, KindDecode) {
		t.Fatalf("decodeRRE error = %v, want KindDecode", err)
	}
}
