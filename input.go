package rfbclient

// C8: input path. Each outbound message is a single small fixed-format
// record; all three return false if the connection isn't Connected
// (§4.8).

// SendPointerEvent sends a PointerEvent and locally updates the cursor
// position, the same effect as receiving a cursor-position pseudo-rect
// (§4.8).
func (c *Connection) SendPointerEvent(x, y uint16, buttonMask uint8) bool {
	if c.state != Connected {
		return false
	}
	msg := make([]byte, 6)
	msg[0] = msgPointerEvent
	msg[1] = buttonMask
	putBeUint16(msg[2:4], x)
	putBeUint16(msg[4:6], y)

	c.cursor.SetPosition(Point{X: int(x), Y: int(y)})

	return c.wire.writeAll(msg) == nil
}

// SendKeyEvent sends a KeyEvent.
func (c *Connection) SendKeyEvent(keysym uint32, down bool) bool {
	if c.state != Connected {
		return false
	}
	msg := make([]byte, 8)
	msg[0] = msgKeyEvent
	if down {
		msg[1] = 1
	}
	putBeUint32(msg[4:8], keysym)
	return c.wire.writeAll(msg) == nil
}

// SendFramebufferUpdateRequest sends a FramebufferUpdateRequest.
func (c *Connection) SendFramebufferUpdateRequest(x, y, w, h uint16, incremental bool) bool {
	if c.state != Connected {
		return false
	}
	msg := make([]byte, 10)
	msg[0] = msgFramebufferUpdateRequest
	if incremental {
		msg[1] = 1
	}
	putBeUint16(msg[2:4], x)
	putBeUint16(msg[4:6], y)
	putBeUint16(msg[6:8], w)
	putBeUint16(msg[8:10], h)
	return c.wire.writeAll(msg) == nil
}

// sendIncrementalFullRefresh requests an incremental update of the
// whole framebuffer; used by the dispatcher's auto-refresh mode (§4.5).
// Connect sends its non-incremental initial request through
// SendFramebufferUpdateRequest directly.
func (c *Connection) sendIncrementalFullRefresh() bool {
	return c.SendFramebufferUpdateRequest(0, 0, c.serverInit.FramebufferWidth, c.serverInit.FramebufferHeight, true)
}

// RequestUserInformation sends the custom side-channel request asking
// the server's extension for the logged-in username (SPEC_FULL.md
// "SUPPLEMENTED FEATURES"); a no-op if not Connected.
func (c *Connection) RequestUserInformation() bool {
	if c.state != Connected {
		return false
	}
	return c.wire.writeAll([]byte{msgItalcGetUserInformation}) == nil
}
