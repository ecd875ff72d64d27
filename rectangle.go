package rfbclient

// Rect is a (x,y,w,h) patch of the framebuffer, in Screen coordinates.
type Rect struct {
	X, Y, W, H uint16
}

// Area returns the pixel count of the rectangle.
func (r Rect) Area() int { return int(r.W) * int(r.H) }

// Empty reports whether the rectangle covers zero pixels.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// within reports whether r fits inside a fbW x fbH framebuffer
// (invariant 1 in §3).
func (r Rect) within(fbW, fbH uint16) bool {
	return int(r.X)+int(r.W) <= int(fbW) && int(r.Y)+int(r.H) <= int(fbH)
}

// union returns the smallest rectangle containing both r and o. Used
// for the cursor bounding-box union (§4.4 cursor position/shape) and
// to build the region-changed payload (§4.7) without pulling in a full
// region/clip library — the teacher's domain (decode correctness) has
// no use for anything more than axis-aligned bounding boxes.
func (r Rect) union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := min(int(r.X), int(o.X))
	y0 := min(int(r.Y), int(o.Y))
	x1 := max(int(r.X)+int(r.W), int(o.X)+int(o.W))
	y1 := max(int(r.Y)+int(r.H), int(o.Y)+int(o.H))
	return Rect{X: uint16(x0), Y: uint16(y0), W: uint16(x1 - x0), H: uint16(y1 - y0)}
}

// Region is the dirty-region payload carried by events (§4.7): the
// union bounding box of every rectangle touched by one
// FramebufferUpdate message, plus the individual rects for consumers
// that want finer-grained repainting.
type Region struct {
	Bounds Rect
	Rects  []Rect
}

// add accumulates rect into the region.
func (reg *Region) add(rect Rect) {
	reg.Bounds = reg.Bounds.union(rect)
	reg.Rects = append(reg.Rects, rect)
}

// Empty reports whether no rectangle has been added.
func (reg *Region) Empty() bool { return len(reg.Rects) == 0 }
