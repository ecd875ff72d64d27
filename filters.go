package rfbclient

// tightFilter is the tagged enum selecting a Tight pre-compression
// filter (§4.4, Design Note 9 "member-function pointers for filters
// become a tagged enum plus dispatch match").
type tightFilter int

const (
	tightFilterCopy tightFilter = iota
	tightFilterPalette
	tightFilterGradient
)

// initCopyFilter configures Copy: identity, 32 bits per pixel.
func (c *Connection) initCopyFilter(w int) int {
	c.tightWidth = w
	return 32
}

// initGradientFilter configures Gradient: 32 bits per pixel, with the
// previous-row buffer zeroed (§4.4 "zero-initialized when the filter
// is initialized").
func (c *Connection) initGradientFilter(w int) int {
	bits := c.initCopyFilter(w)
	for i := range c.tightPrevRow[:w*3] {
		c.tightPrevRow[i] = 0
	}
	return bits
}

// initPaletteFilter reads the palette size and entries from the wire
// and returns 1 bpp for a 2-color palette or 8 bpp otherwise (§4.4
// FilterPalette).
func (c *Connection) initPaletteFilter(w int) (int, error) {
	c.tightWidth = w
	b, err := c.wire.readExact(1)
	if err != nil {
		return 0, err
	}
	numColors := int(b[0]) + 1
	if numColors < 2 {
		return 0, protocolErr("initPaletteFilter", errBadPaletteSize)
	}
	c.tightColors = numColors

	raw, err := c.wire.readExact(numColors * 4)
	if err != nil {
		return 0, err
	}
	for i := 0; i < numColors; i++ {
		c.tightPalette[i] = nativePixel(raw[i*4 : i*4+4])
	}
	if numColors == 2 {
		return 1, nil
	}
	return 8, nil
}

// applyCopyFilter decodes numRows of 32-bpp packed local-format pixels
// directly.
func (c *Connection) applyCopyFilter(data []byte, numRows int) []uint32 {
	w := c.tightWidth
	out := make([]uint32, numRows*w)
	for i := range out {
		out[i] = nativePixel(data[i*4 : i*4+4])
	}
	return out
}

// applyPaletteFilter decodes numRows of palette-indexed pixels (§4.4
// FilterPalette): 1 bpp packed MSB-first with each row padded to whole
// bytes when there are 2 colors, else 1 index byte per pixel.
func (c *Connection) applyPaletteFilter(data []byte, numRows int) []uint32 {
	w := c.tightWidth
	out := make([]uint32, numRows*w)
	if c.tightColors == 2 {
		rowBytes := (w + 7) / 8
		for y := 0; y < numRows; y++ {
			row := data[y*rowBytes : (y+1)*rowBytes]
			for x := 0; x < w; x++ {
				byteIdx := x / 8
				bit := 7 - (x % 8)
				idx := (row[byteIdx] >> bit) & 1
				out[y*w+x] = c.tightPalette[idx]
			}
		}
		return out
	}
	for i := 0; i < numRows*w; i++ {
		out[i] = c.tightPalette[data[i]]
	}
	return out
}

// applyGradientFilter decodes numRows of predictive-coded pixels (§4.4
// FilterGradient): each channel is predicted from the row above, the
// pixel to the left, and the pixel above-left, clamped to the channel
// mask, and the source delta is then applied. The previous-row buffer
// persists across calls within one rectangle (P4).
func (c *Connection) applyGradientFilter(data []byte, numRows int) []uint32 {
	w := c.tightWidth
	out := make([]uint32, numRows*w)

	max := [3]uint32{uint32(LocalPixelFormat.RedMax), uint32(LocalPixelFormat.GreenMax), uint32(LocalPixelFormat.BlueMax)}
	shift := [3]uint32{uint32(LocalPixelFormat.RedShift), uint32(LocalPixelFormat.GreenShift), uint32(LocalPixelFormat.BlueShift)}

	thisRow := make([]uint16, w*3)

	for y := 0; y < numRows; y++ {
		srcRow := data[y*w*4 : (y+1)*w*4]
		var pix [3]uint16
		for chnl := 0; chnl < 3; chnl++ {
			delta := (nativePixel(srcRow[0:4]) >> shift[chnl]) & max[chnl]
			pix[chnl] = uint16((delta + uint32(c.tightPrevRow[chnl])) & max[chnl])
			thisRow[chnl] = pix[chnl]
		}
		out[y*w] = rgbToPixel(uint32(pix[0]), uint32(pix[1]), uint32(pix[2]))

		for x := 1; x < w; x++ {
			srcPix := nativePixel(srcRow[x*4 : x*4+4])
			var est [3]int
			for chnl := 0; chnl < 3; chnl++ {
				e := int(c.tightPrevRow[x*3+chnl]) + int(pix[chnl]) - int(c.tightPrevRow[(x-1)*3+chnl])
				if e > int(max[chnl]) {
					e = int(max[chnl])
				} else if e < 0 {
					e = 0
				}
				est[chnl] = e
				delta := (srcPix >> shift[chnl]) & max[chnl]
				pix[chnl] = uint16((delta + uint32(est[chnl])) & max[chnl])
				thisRow[x*3+chnl] = pix[chnl]
			}
			out[y*w+x] = rgbToPixel(uint32(pix[0]), uint32(pix[1]), uint32(pix[2]))
		}
		copy(c.tightPrevRow[:w*3], thisRow)
	}
	return out
}
