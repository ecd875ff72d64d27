package rfbclient

// decodeCoRRE implements C4 CoRRE (§4.4): a background fill plus a run
// of 8-bit-relative subrectangles. RRE itself is explicitly not
// supported (see decodeRRE).
func (c *Connection) decodeCoRRE(rect Rect) error {
	header, err := c.wire.readExact(4 + 4)
	if err != nil {
		return err
	}
	nSubrects := int(beUint32(header[0:4]))
	bg := nativePixel(header[4:8])

	c.screen.FillRect(int(rect.X), int(rect.Y), int(rect.W), int(rect.H), bg)

	const subrectSize = 4 + 1 + 1 + 1 + 1 // pixel + x8 + y8 + w8 + h8
	buf, err := c.wire.readExact(nSubrects * subrectSize)
	if err != nil {
		return err
	}

	for i := 0; i < nSubrects; i++ {
		rec := buf[i*subrectSize : (i+1)*subrectSize]
		pixel := nativePixel(rec[0:4])
		sx, sy, sw, sh := rec[4], rec[5], rec[6], rec[7]
		c.screen.FillRect(int(rect.X)+int(sx), int(rect.Y)+int(sy), int(sw), int(sh), pixel)
	}
	return nil
}

// decodeRRE rejects plain RRE, which this core explicitly never
// requests and treats as a fatal protocol violation if received
// (§4.4, §1 Non-goals).
func (c *Connection) decodeRRE(rect Rect) error {
	return decodeErr("decodeRRE", errUnsupportedRRE)
}
