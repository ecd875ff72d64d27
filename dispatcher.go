package rfbclient

import (
	"fmt"

	"github.com/eduview/rfbclient/encodings"
)

// demoLowMask and demoMediumMask are the AND-masks the dispatcher
// applies per pixel for the Demo color-reduction tiers (§4.5); DemoHigh
// is untouched.
const (
	demoLowMask    = 0xF8F8F8
	demoMediumMask = 0xFCFCFC
)

// maxDispatchTries bounds how many messages Run processes per call
// before yielding back to the caller, mirroring the teacher's
// hasData()-driven loop rather than blocking forever on one call.
const maxDispatchTries = 64

// Run dispatches server messages (C5) — FramebufferUpdate, Bell,
// ServerCutText and SetColourMapEntries — while the transport reports
// buffered data. It returns when the transport has no more buffered
// data, after maxDispatchTries messages, or immediately on any fatal
// error, having already transitioned the Connection to ConnectionFailed.
func (c *Connection) Run() error {
	tries := maxDispatchTries
	for c.wire.hasData() && tries > 0 {
		tries--
		if err := c.dispatchOne(); err != nil {
			c.fail(err)
			return err
		}
	}
	return nil
}

// fail transitions to ConnectionFailed, closes the transport, and
// releases every zlib stream (§4.5 "closing resets every zlib stream's
// active flag").
func (c *Connection) fail(err error) {
	c.log.Errorf("rfbclient: dispatch failed: %v", err)
	c.state = ConnectionFailed
	c.zlib.resetAll()
	c.transport.Close()
}

func (c *Connection) dispatchOne() error {
	msgType, err := c.wire.readExact(1)
	if err != nil {
		return err
	}

	switch msgType[0] {
	case smsgFramebufferUpdate:
		return c.handleFramebufferUpdate()
	case smsgSetColourMapEntries:
		return c.handleSetColourMapEntries()
	case smsgBell:
		return nil
	case smsgServerCutText:
		return c.handleServerCutText()
	default:
		return protocolErr("dispatchOne", fmt.Errorf("unknown message type %d", msgType[0]))
	}
}

// handleSetColourMapEntries reads and discards the payload; indexed
// color maps aren't supported by this core's fixed 32-bpp true-color
// format (§1 Non-goals).
func (c *Connection) handleSetColourMapEntries() error {
	header, err := c.wire.readExact(1 + 2 + 2)
	if err != nil {
		return err
	}
	nColors := int(beUint16(header[3:5]))
	if nColors > 0 {
		if _, err := c.wire.readExact(nColors * 6); err != nil {
			return err
		}
	}
	c.log.Warningf("rfbclient: ignoring SetColourMapEntries (%d colors)", nColors)
	return nil
}

// handleServerCutText reads and discards the clipboard payload; no
// clipboard integration is in scope (§1 Non-goals).
func (c *Connection) handleServerCutText() error {
	header, err := c.wire.readExact(3 + 4)
	if err != nil {
		return err
	}
	n := int(beUint32(header[3:7]))
	if n > 0 {
		if _, err := c.wire.readExact(n); err != nil {
			return err
		}
	}
	return nil
}

// handleFramebufferUpdate implements the core of C5 (§4.5): holds the
// Screen write lock for the whole message, dispatches every rectangle,
// and on success posts one combined region-changed event if any rect
// or cursor change was recorded. Any
// rectangle failing bounds or decoding aborts the whole message with no
// partial commit of events — the Screen itself may already carry
// partially-written pixels from earlier rects in the message, but no
// notification is posted for them (§7 "No partial commit").
func (c *Connection) handleFramebufferUpdate() error {
	header, err := c.wire.readExact(1 + 2)
	if err != nil {
		return err
	}
	nRects := int(beUint16(header[1:3]))

	c.screen.Lock()
	defer c.screen.Unlock()

	var region Region
	var pixelRegion Region
	cursorChanged := false

	for i := 0; i < nRects; i++ {
		rectHeader, err := c.wire.readExact(2 + 2 + 2 + 2 + 4)
		if err != nil {
			return err
		}
		rect := Rect{
			X: beUint16(rectHeader[0:2]),
			Y: beUint16(rectHeader[2:4]),
			W: beUint16(rectHeader[4:6]),
			H: beUint16(rectHeader[6:8]),
		}
		enc := encodings.Encoding(beUint32(rectHeader[8:12]))

		if enc == encodings.LastRect {
			break
		}

		if enc.IsCursorPseudo() {
			switch enc {
			case encodings.PointerPos:
				region.add(c.decodeCursorPos(rect))
			case encodings.RichCursor:
				if err := c.decodeRichCursor(rect); err != nil {
					return err
				}
				region.add(c.cursor.boundingBox())
				cursorChanged = true
			case encodings.XCursor:
				if err := c.decodeXCursor(rect); err != nil {
					return err
				}
				region.add(c.cursor.boundingBox())
				cursorChanged = true
			case encodings.ItalcCursor:
				if err := c.decodeItalcCursor(rect); err != nil {
					return err
				}
				region.add(c.cursor.boundingBox())
				cursorChanged = true
			}
			c.softwareCursor = true
			continue
		}

		if !rect.within(c.serverInit.FramebufferWidth, c.serverInit.FramebufferHeight) {
			return boundsErr("handleFramebufferUpdate", fmt.Errorf("rect %+v outside %dx%d framebuffer", rect, c.serverInit.FramebufferWidth, c.serverInit.FramebufferHeight))
		}
		if rect.Empty() {
			continue
		}

		if err := c.decodeRect(rect, enc); err != nil {
			return err
		}
		region.add(rect)
		pixelRegion.add(rect)
	}

	if c.quality.isDemo() {
		var mask uint32
		switch c.quality {
		case QualityDemoLow:
			mask = demoLowMask
		case QualityDemoMedium:
			mask = demoMediumMask
		}
		if mask != 0 {
			for _, r := range pixelRegion.Rects {
				c.screen.AndMask(r, mask)
			}
		}
	}

	if !pixelRegion.Empty() {
		c.scaledScreenNeedsUpdate = true
		c.scaledScreen.Invalidate()
	}

	if !region.Empty() {
		c.events.PostRegionChanged(region)
		if c.quality < QualityDemoLow {
			c.events.SignalRegionUpdated(region)
		}
	}
	if cursorChanged {
		c.events.SignalCursorShapeChanged()
	}

	if c.autoRefresh {
		c.sendIncrementalFullRefresh()
	}

	return nil
}

// decodeRect dispatches one non-cursor rectangle to its C4 decoder by a
// tagged switch — no virtual dispatch (§9 Design Note 1).
func (c *Connection) decodeRect(rect Rect, enc encodings.Encoding) error {
	switch enc {
	case encodings.Raw:
		return c.decodeRaw(rect)
	case encodings.CopyRect:
		return c.decodeCopyRect(rect)
	case encodings.RRE:
		return c.decodeRRE(rect)
	case encodings.CoRRE:
		return c.decodeCoRRE(rect)
	case encodings.Zlib:
		return c.decodeZlib(rect)
	case encodings.Tight:
		return c.decodeTight(rect)
	case encodings.Italc:
		return c.decodeItalc(rect)
	default:
		return protocolErr("decodeRect", fmt.Errorf("unsupported encoding %s", enc))
	}
}
