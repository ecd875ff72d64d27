package rfbclient

// decodeCopyRect implements C4 CopyRect: read srcX, srcY and copy the
// rect from elsewhere in the Screen, safe for overlap (§4.2).
func (c *Connection) decodeCopyRect(rect Rect) error {
	buf, err := c.wire.readExact(4)
	if err != nil {
		return err
	}
	srcX := beUint16(buf[0:2])
	srcY := beUint16(buf[2:4])
	c.screen.CopySelfRect(int(srcX), int(srcY), int(rect.W), int(rect.H), int(rect.X), int(rect.Y))
	return nil
}
