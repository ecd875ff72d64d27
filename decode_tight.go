package rfbclient

// tightMinToCompress is the smallest row-batch byte count Tight will
// ever zlib-compress; anything smaller travels as raw bytes (§4.4).
const tightMinToCompress = 12

const (
	tightCtlFill = 0x80
	tightCtlJpeg = 0x90
)

// decodeTight implements C4 Tight (§4.4): a per-rectangle compression-
// control byte selects stream resets plus one of Fill, Jpeg, or a
// filtered (Copy/Palette/Gradient) zlib or raw payload.
func (c *Connection) decodeTight(rect Rect) error {
	ctlBuf, err := c.wire.readExact(1)
	if err != nil {
		return err
	}
	ctl := ctlBuf[0]

	resetMask := ctl & 0x0F
	for i := 0; i < 4; i++ {
		if resetMask&(1<<uint(i)) != 0 {
			c.zlib.reset(1 + i)
		}
	}

	switch ctl {
	case tightCtlFill:
		return c.decodeTightFill(rect)
	case tightCtlJpeg:
		return c.decodeTightJpeg(rect)
	}

	if ctl&0x80 != 0 {
		return protocolErr("decodeTight", errBadSubencoding)
	}

	explicitFilter := ctl&0x40 != 0
	streamID := int(ctl & 0x03)

	filter := tightFilterCopy
	if explicitFilter {
		fb, err := c.wire.readExact(1)
		if err != nil {
			return err
		}
		filter = tightFilter(fb[0])
	}

	w, h := int(rect.W), int(rect.H)
	var bitsPerPixel int
	switch filter {
	case tightFilterCopy:
		bitsPerPixel = c.initCopyFilter(w)
	case tightFilterGradient:
		bitsPerPixel = c.initGradientFilter(w)
	case tightFilterPalette:
		bitsPerPixel, err = c.initPaletteFilter(w)
		if err != nil {
			return err
		}
	default:
		return protocolErr("decodeTight", errBadSubencoding)
	}

	rowSize := (w*bitsPerPixel + 7) / 8
	dataSize := rowSize * h

	var payload []byte
	if dataSize < tightMinToCompress {
		payload, err = c.wire.readExact(dataSize)
		if err != nil {
			return err
		}
	} else {
		compLen, err := c.wire.readCompactLen()
		if err != nil {
			return err
		}
		compressed, err := c.wire.readExact(int(compLen))
		if err != nil {
			return err
		}
		payload = make([]byte, dataSize)
		if err := c.zlib.inflate(1+streamID, compressed, payload); err != nil {
			return err
		}
	}

	var pixels []uint32
	switch filter {
	case tightFilterCopy:
		pixels = c.applyCopyFilter(payload, h)
	case tightFilterGradient:
		pixels = c.applyGradientFilter(payload, h)
	case tightFilterPalette:
		pixels = c.applyPaletteFilter(payload, h)
	}

	c.screen.CopyRectFrom(int(rect.X), int(rect.Y), w, h, pixels)
	return nil
}

// decodeTightFill implements the Fill subencoding: one pixel, solid
// fill of the whole rectangle.
func (c *Connection) decodeTightFill(rect Rect) error {
	buf, err := c.wire.readExact(4)
	if err != nil {
		return err
	}
	pixel := nativePixel(buf)
	c.screen.FillRect(int(rect.X), int(rect.Y), int(rect.W), int(rect.H), pixel)
	return nil
}

// decodeTightJpeg implements the Jpeg subencoding: a compact-length-
// prefixed JPEG stream covering the whole rectangle.
func (c *Connection) decodeTightJpeg(rect Rect) error {
	compLen, err := c.wire.readCompactLen()
	if err != nil {
		return err
	}
	data, err := c.wire.readExact(int(compLen))
	if err != nil {
		return err
	}
	if !jpegSupported {
		return decodeErr("decodeTightJpeg", errJPEGDisabled)
	}
	img, err := decodeJPEGImage(data)
	if err != nil {
		return decodeErr("decodeTightJpeg", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != int(rect.W) || bounds.Dy() != int(rect.H) {
		return decodeErr("decodeTightJpeg", errJPEGDimensionMismatch)
	}

	pixels := make([]uint32, int(rect.W)*int(rect.H))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*int(rect.W)+x] = rgbToPixel(r>>8, g>>8, b>>8)
		}
	}
	c.screen.CopyRectFrom(int(rect.X), int(rect.Y), int(rect.W), int(rect.H), pixels)
	return nil
}
