package rfbclient

import "testing"

// TestDecodeItalc_LZORLE is scenario 5 (§8) / P6: an LZO1X-compressed,
// RLE-encoded rect whose second run overruns the rectangle's remaining
// pixel budget, which must silently clip rather than wrap or warn.
func TestDecodeItalc_LZORLE(t *testing.T) {
	rle := []byte{
		0x00, 0xFF, 0x00, 0x01, // native-order pixel 0x00FF00, run byte 1 (2 pixels)
		0xFF, 0x00, 0x00, 0x02, // native-order pixel 0x0000FF, run byte 2 (3 pixels, 1 fits)
	}
	// A literal-only LZO1X stream: first opcode byte > 17 means
	// "copy (t-17) literal bytes", consuming the rest of the input.
	lzo := append([]byte{byte(len(rle) + 17)}, rle...)

	var header []byte
	header = append(header, 1) // compressed = true
	var lzoLen, rleLen [4]byte
	putBeUint32(lzoLen[:], uint32(len(lzo)))
	putBeUint32(rleLen[:], uint32(len(rle)))
	header = append(header, lzoLen[:]...)
	header = append(header, rleLen[:]...)

	data := append(header, lzo...)

	c := testConnection(data, 3, 1)
	c.screen.Lock()
	err := c.decodeItalc(Rect{X: 0, Y: 0, W: 3, H: 1})
	c.screen.Unlock()
	if err != nil {
		t.Fatalf("decodeItalc: %v", err)
	}

	c.screen.RLock()
	defer c.screen.RUnlock()
	row := c.screen.ScanLine(0)
	want := [3]uint32{0x00FF00, 0x00FF00, 0x0000FF}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("pixel %d = %#x, want %#x", i, row[i], w)
		}
	}
}

// TestDecodeItalc_LengthMismatch is P6: a declared bytesRLE the
// decompressor can't actually produce is a fatal decode error.
func TestDecodeItalc_LengthMismatch(t *testing.T) {
	lzo := []byte{byte(4 + 17), 0, 0, 0, 0} // produces 4 bytes

	var header []byte
	header = append(header, 1)
	var lzoLen, rleLen [4]byte
	putBeUint32(lzoLen[:], uint32(len(lzo)))
	putBeUint32(rleLen[:], 8) // declared 8, actual 4
	header = append(header, lzoLen[:]...)
	header = append(header, rleLen[:]...)
	data := append(header, lzo...)

	c := testConnection(data, 3, 1)
	c.screen.Lock()
	err := c.decodeItalc(Rect{X: 0, Y: 0, W: 3, H: 1})
	c.screen.Unlock()
	if !IsKind(err, KindDecode) {
		t.Fatalf("err = %v, want KindDecode", err)
	}
}
