package rfbclient

import (
	"image"
	"image/color"
	"sync"
)

// Screen is a 32-bpp pixel grid of constant size after creation (§4.2).
// Pixels are stored as host-native uint32 values in LocalPixelFormat
// layout (R<<16 | G<<8 | B); one row is Width contiguous pixels, so
// ScanLine(y) addresses row y directly without any stride arithmetic
// beyond the multiply done once here.
//
// The screen is written only by the dispatcher while holding the write
// lock (Lock/Unlock), and read by UI/snapshot collaborators under
// RLock/RUnlock (§3 invariant 2).
type Screen struct {
	mu     sync.RWMutex
	width  int
	height int
	pixels []uint32
}

// NewScreen allocates a Screen of the given size, zero-filled (black).
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// Width and Height are fixed for the lifetime of the Screen.
func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Lock/Unlock/RLock/RUnlock expose the screen's read/write lock
// directly so the dispatcher can hold it for the duration of one
// FramebufferUpdate message (§3 invariant 2) while calling into
// multiple decoders.
func (s *Screen) Lock()    { s.mu.Lock() }
func (s *Screen) Unlock()  { s.mu.Unlock() }
func (s *Screen) RLock()   { s.mu.RLock() }
func (s *Screen) RUnlock() { s.mu.RUnlock() }

// scanLine returns the mutable row of Width pixels starting at y.
// Caller must hold the write lock.
func (s *Screen) scanLine(y int) []uint32 {
	start := y * s.width
	return s.pixels[start : start+s.width]
}

// ScanLine is the exported form of scanLine for external read access
// (UI painting); caller must hold RLock/Lock.
func (s *Screen) ScanLine(y int) []uint32 {
	return s.scanLine(y)
}

// FillRect sets every pixel in (x,y,w,h) to pixel. Caller must hold
// the write lock.
func (s *Screen) FillRect(x, y, w, h int, pixel uint32) {
	for row := y; row < y+h; row++ {
		line := s.scanLine(row)
		for col := x; col < x+w; col++ {
			line[col] = pixel
		}
	}
}

// CopyRectFrom copies a row-packed source of w pixels per row into
// (x,y,w,h). src must contain at least w*h pixels, row-major. Caller
// must hold the write lock.
func (s *Screen) CopyRectFrom(x, y, w, h int, src []uint32) {
	for row := 0; row < h; row++ {
		dst := s.scanLine(y + row)[x : x+w]
		copy(dst, src[row*w:(row+1)*w])
	}
}

// CopySelfRect copies a w x h rectangle at (srcX,srcY) to (dstX,dstY),
// safe for overlapping source/destination regions (§4.2): when the
// vertical ranges overlap and the destination is below the source, rows
// are copied bottom-to-top; otherwise top-to-bottom. Horizontal overlap
// within a row is handled by Go's copy(), which is memmove-safe.
// Caller must hold the write lock.
func (s *Screen) CopySelfRect(srcX, srcY, w, h, dstX, dstY int) {
	if dstY > srcY {
		for row := h - 1; row >= 0; row-- {
			srcLine := s.scanLine(srcY + row)
			dstLine := s.scanLine(dstY + row)
			copy(dstLine[dstX:dstX+w], srcLine[srcX:srcX+w])
		}
		return
	}
	for row := 0; row < h; row++ {
		srcLine := s.scanLine(srcY + row)
		dstLine := s.scanLine(dstY + row)
		copy(dstLine[dstX:dstX+w], srcLine[srcX:srcX+w])
	}
}

// AndMask applies a bitwise AND over every pixel in rect — used by the
// dispatcher's demo-quality color reduction (§4.5). Caller must hold
// the write lock.
func (s *Screen) AndMask(rect Rect, mask uint32) {
	for row := int(rect.Y); row < int(rect.Y)+int(rect.H); row++ {
		line := s.scanLine(row)
		for col := int(rect.X); col < int(rect.X)+int(rect.W); col++ {
			line[col] &= mask
		}
	}
}

// Snapshot returns a copy of the current Screen contents as a stdlib
// image.Image, for a GUI collaborator to composite a caption onto and
// save (§1 Non-goals keep the disk I/O and font rendering out of this
// core; see SPEC_FULL.md "SUPPLEMENTED FEATURES").
func (s *Screen) Snapshot() image.Image {
	s.RLock()
	defer s.RUnlock()
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		line := s.scanLine(y)
		for x := 0; x < s.width; x++ {
			p := line[x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(p >> LocalPixelFormat.RedShift),
				G: uint8(p >> LocalPixelFormat.GreenShift),
				B: uint8(p >> LocalPixelFormat.BlueShift),
				A: 0xff,
			})
		}
	}
	return img
}

// ScaledScreen is a lazily-refreshed down/up-scaled copy of a Screen
// (§3), independent of the Screen's lock so a UI paint of the scaled
// view never blocks on an in-flight decode.
type ScaledScreen struct {
	mu         sync.RWMutex
	source     *Screen
	target     image.Point
	needsSync  bool
	scaled     *image.NRGBA
}

// NewScaledScreen creates a scaled view over source; call SetTargetSize
// to activate it (an empty target size means scaling is disabled).
func NewScaledScreen(source *Screen) *ScaledScreen {
	return &ScaledScreen{source: source}
}

// SetTargetSize changes the desired scaled dimensions and marks the
// scaled copy dirty.
func (ss *ScaledScreen) SetTargetSize(w, h int) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.target = image.Point{X: w, Y: h}
	ss.needsSync = true
}

// Invalidate marks the scaled copy dirty; called by the dispatcher
// whenever any rectangle is written to the source Screen.
func (ss *ScaledScreen) Invalidate() {
	ss.mu.Lock()
	ss.needsSync = true
	ss.mu.Unlock()
}

// Refresh rebuilds the scaled copy if dirty and a target size is set.
// Safe to call from any reader; only one rebuild happens per dirty
// period.
func (ss *ScaledScreen) Refresh() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if !ss.needsSync || ss.target.X == 0 || ss.target.Y == 0 {
		return
	}
	ss.scaled = nearestScale(ss.source, ss.target.X, ss.target.Y)
	ss.needsSync = false
}

// Image returns the current scaled copy, or nil if none has been
// produced yet.
func (ss *ScaledScreen) Image() *image.NRGBA {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.scaled
}

func nearestScale(src *Screen, dstW, dstH int) *image.NRGBA {
	src.RLock()
	defer src.RUnlock()
	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	srcW, srcH := src.width, src.height
	if srcW == 0 || srcH == 0 {
		return out
	}
	for y := 0; y < dstH; y++ {
		sy := y * srcH / dstH
		line := src.scanLine(sy)
		for x := 0; x < dstW; x++ {
			sx := x * srcW / dstW
			p := line[sx]
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(p >> LocalPixelFormat.RedShift),
				G: uint8(p >> LocalPixelFormat.GreenShift),
				B: uint8(p >> LocalPixelFormat.BlueShift),
				A: 0xff,
			})
		}
	}
	return out
}
