package rfbclient

import "encoding/binary"

// PixelFormat describes how pixel color data is encoded on the wire,
// grounded on tenthirtyam-go-vnc/pixel_format.go's field set.
type PixelFormat struct {
	BPP        uint8
	Depth      uint8
	BigEndian  bool
	TrueColor  bool
	RedMax     uint16
	GreenMax   uint16
	BlueMax    uint16
	RedShift   uint8
	GreenShift uint8
	BlueShift  uint8
}

// LocalPixelFormat is the fixed format this client requests from the
// server and the in-memory layout of the Screen (§3): 32 bpp / 32
// depth / true color / max 255 per channel / R-G-B shift 16-8-0.
var LocalPixelFormat = PixelFormat{
	BPP:        32,
	Depth:      32,
	BigEndian:  isHostBigEndian(),
	TrueColor:  true,
	RedMax:     255,
	GreenMax:   255,
	BlueMax:    255,
	RedShift:   16,
	GreenShift: 8,
	BlueShift:  0,
}

func isHostBigEndian() bool {
	var x uint16 = 1
	b := [2]byte{}
	binary.NativeEndian.PutUint16(b[:], x)
	return b[0] == 0
}

// rgbToPixel packs 8-bit channels into a local-format 32-bit pixel
// using the shift-and-or scheme from the original RGB_TO_PIXEL macro.
func rgbToPixel(r, g, b uint32) uint32 {
	return (r&uint32(LocalPixelFormat.RedMax))<<LocalPixelFormat.RedShift |
		(g&uint32(LocalPixelFormat.GreenMax))<<LocalPixelFormat.GreenShift |
		(b&uint32(LocalPixelFormat.BlueMax))<<LocalPixelFormat.BlueShift
}

// rgb24ToPixel scales 8-bit (0-255) channels into the local pixel
// format's channel maxima, per the original RGB24_TO_PIXEL macro.
func rgb24ToPixel(r, g, b uint8) uint32 {
	scale := func(c uint8, max uint16) uint32 {
		return (uint32(c)*uint32(max) + 127) / 255
	}
	return scale(r, LocalPixelFormat.RedMax)<<LocalPixelFormat.RedShift |
		scale(g, LocalPixelFormat.GreenMax)<<LocalPixelFormat.GreenShift |
		scale(b, LocalPixelFormat.BlueMax)<<LocalPixelFormat.BlueShift
}

// marshal encodes the pixel format into its 16-byte wire form.
func (pf PixelFormat) marshal() [16]byte {
	var buf [16]byte
	buf[0] = pf.BPP
	buf[1] = pf.Depth
	if pf.BigEndian {
		buf[2] = 1
	}
	if pf.TrueColor {
		buf[3] = 1
	}
	binary.BigEndian.PutUint16(buf[4:6], pf.RedMax)
	binary.BigEndian.PutUint16(buf[6:8], pf.GreenMax)
	binary.BigEndian.PutUint16(buf[8:10], pf.BlueMax)
	buf[10] = pf.RedShift
	buf[11] = pf.GreenShift
	buf[12] = pf.BlueShift
	// buf[13:16] are padding.
	return buf
}

// unmarshalPixelFormat decodes the 16-byte wire form.
func unmarshalPixelFormat(buf []byte) PixelFormat {
	return PixelFormat{
		BPP:        buf[0],
		Depth:      buf[1],
		BigEndian:  buf[2] != 0,
		TrueColor:  buf[3] != 0,
		RedMax:     binary.BigEndian.Uint16(buf[4:6]),
		GreenMax:   binary.BigEndian.Uint16(buf[6:8]),
		BlueMax:    binary.BigEndian.Uint16(buf[8:10]),
		RedShift:   buf[10],
		GreenShift: buf[11],
		BlueShift:  buf[12],
	}
}

// ServerInit is decoded once after ClientInit, per §3.
type ServerInit struct {
	FramebufferWidth  uint16
	FramebufferHeight uint16
	Format            PixelFormat
	DesktopName       string
}
