package rfbclient

// decodeItalc implements the custom Italc rectangle encoding (§4.4): a
// header selects between an uncompressed Raw payload and an
// LZO1X-compressed, RLE-encoded payload.
func (c *Connection) decodeItalc(rect Rect) error {
	header, err := c.wire.readExact(1 + 4 + 4)
	if err != nil {
		return err
	}
	compressed := header[0] != 0
	bytesLZO := int(beUint32(header[1:5]))
	bytesRLE := int(beUint32(header[5:9]))

	if !compressed {
		return c.decodeRaw(rect)
	}

	lzoData, err := c.wire.readExact(bytesLZO)
	if err != nil {
		return err
	}
	rle, err := lzo1xDecompress(lzoData, bytesRLE)
	if err != nil {
		return err
	}
	if len(rle)%4 != 0 {
		return decodeErr("decodeItalc", errLZOLengthMismatch)
	}

	w, h := int(rect.W), int(rect.H)
	total := w * h
	screenHeight := c.screen.Height()

	pos := 0
	for i := 0; i+4 <= len(rle) && pos < total; i += 4 {
		pixel := nativePixel(rle[i:i+4]) & 0x00FFFFFF
		run := int(rle[i+3]) + 1

		for j := 0; j < run && pos < total; j++ {
			row := pos / w
			col := pos % w
			absY := int(rect.Y) + row
			if absY < screenHeight {
				c.screen.ScanLine(absY)[int(rect.X)+col] = pixel
			}
			pos++
		}
	}
	return nil
}
