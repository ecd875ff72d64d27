package rfbclient

import (
	"image"
	"sync"
)

// Point is an (x,y) coordinate in Screen space.
type Point struct{ X, Y int }

// Cursor holds the locally-rendered pointer shape and its last known
// server-reported position (§3). Shape and hotspot are written under
// their own lock; position updates never touch the shape lock, so a
// PointerEvent (§4.8) can update the local cursor position without
// contending with an in-flight cursor-shape decode.
type Cursor struct {
	shapeMu sync.RWMutex
	shape   *image.NRGBA
	hotspot Point

	posMu    sync.RWMutex
	position Point
}

// Shape returns the current cursor image and hotspot.
func (c *Cursor) Shape() (*image.NRGBA, Point) {
	c.shapeMu.RLock()
	defer c.shapeMu.RUnlock()
	return c.shape, c.hotspot
}

// SetShape replaces the cursor image and hotspot.
func (c *Cursor) SetShape(img *image.NRGBA, hotspot Point) {
	c.shapeMu.Lock()
	c.shape = img
	c.hotspot = hotspot
	c.shapeMu.Unlock()
}

// Position returns the last reported cursor position.
func (c *Cursor) Position() Point {
	c.posMu.RLock()
	defer c.posMu.RUnlock()
	return c.position
}

// SetPosition updates the cursor position only.
func (c *Cursor) SetPosition(p Point) {
	c.posMu.Lock()
	c.position = p
	c.posMu.Unlock()
}

// boundingBox returns the on-screen rectangle covered by the cursor at
// its current position and hotspot, used to compute the union region
// posted on a position or shape change (§4.4).
func (c *Cursor) boundingBox() Rect {
	pos := c.Position()
	shape, hotspot := c.Shape()
	if shape == nil {
		return Rect{}
	}
	b := shape.Bounds()
	x := pos.X - hotspot.X
	y := pos.Y - hotspot.Y
	if x < 0 || y < 0 {
		return Rect{}
	}
	return Rect{X: uint16(x), Y: uint16(y), W: uint16(b.Dx()), H: uint16(b.Dy())}
}
