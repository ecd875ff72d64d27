package rfbclient

// zlibGenericStream is the index of the single generic Zlib encoding's
// stream (stream 0 of the 5 in zlibStreamSet); Tight's streams occupy
// indices 1..4 (§3, §4.3).
const zlibGenericStream = 0

// decodeZlib implements C4 Zlib (§4.4): read nBytes of zlib-compressed
// data, inflate via the generic stream, and copy the result into the
// Screen.
func (c *Connection) decodeZlib(rect Rect) error {
	header, err := c.wire.readExact(4)
	if err != nil {
		return err
	}
	nBytes := int(beUint32(header))

	needed := rect.Area() * 4
	if cap(c.rawBuffer) < needed {
		c.rawBuffer = make([]byte, needed)
	}
	c.rawBuffer = c.rawBuffer[:needed]

	compressed, err := c.wire.readExact(nBytes)
	if err != nil {
		return err
	}

	if err := c.zlib.inflate(zlibGenericStream, compressed, c.rawBuffer); err != nil {
		return err
	}

	pixels := make([]uint32, rect.Area())
	for i := range pixels {
		pixels[i] = nativePixel(c.rawBuffer[i*4 : i*4+4])
	}
	c.screen.CopyRectFrom(int(rect.X), int(rect.Y), int(rect.W), int(rect.H), pixels)
	return nil
}
