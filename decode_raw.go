package rfbclient

import "encoding/binary"

// nativePixel reads a 4-byte pixel in the host's native byte order —
// valid because LocalPixelFormat.BigEndian is set to match the host,
// so the server always ships pixels already in host order for this
// client (§3 "LocalPixelFormat").
func nativePixel(b []byte) uint32 {
	return binary.NativeEndian.Uint32(b)
}

func putNativePixel(b []byte, v uint32) {
	binary.NativeEndian.PutUint32(b, v)
}

// decodeRaw implements C4 Raw: read w*h*4 bytes in row batches bounded
// by the shared scratch buffer, row-copying into the Screen.
func (c *Connection) decodeRaw(rect Rect) error {
	x, y, w, h := int(rect.X), int(rect.Y), int(rect.W), int(rect.H)
	rowBytes := w * 4
	if rowBytes == 0 {
		return nil
	}
	rowsPerBatch := len(c.scratch) / rowBytes
	if rowsPerBatch < 1 {
		rowsPerBatch = 1
	}

	for h > 0 {
		batch := rowsPerBatch
		if batch > h {
			batch = h
		}
		buf, err := c.wire.readExact(rowBytes * batch)
		if err != nil {
			return err
		}
		for row := 0; row < batch; row++ {
			dst := c.screen.scanLine(y)[x : x+w]
			src := buf[row*rowBytes : (row+1)*rowBytes]
			for col := 0; col < w; col++ {
				dst[col] = nativePixel(src[col*4 : col*4+4])
			}
			y++
		}
		h -= batch
	}
	return nil
}
