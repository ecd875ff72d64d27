package rfbclient

import "testing"

// TestDispatcher_BoundsViolation is scenario 6 (§8) / P1: a rectangle
// exceeding the framebuffer fails the whole update, transitions to
// ConnectionFailed, and posts no region event.
func TestDispatcher_BoundsViolation(t *testing.T) {
	fbW, fbH := 4, 4

	var data []byte
	data = append(data, 0)    // pad
	data = append(data, 0, 1) // nRects = 1
	// rect: x=0,y=0,w=fbW+1,h=1, encoding=Raw
	data = append(data, 0, 0) // x
	data = append(data, 0, 0) // y
	data = append(data, byte((fbW+1)>>8), byte(fbW+1)) // w
	data = append(data, 0, 1)                          // h
	data = append(data, 0, 0, 0, 0)                     // Raw = 0

	rec := &recordingEvents{}
	c := testConnection(nil, fbW, fbH)
	c.events = rec
	c.wire = newWireCodec(newFakeTransport(append([]byte{smsgFramebufferUpdate}, data...)))

	err := c.dispatchOne()
	if err == nil {
		t.Fatal("expected bounds error, got nil")
	}
	if !IsKind(err, KindBounds) {
		t.Errorf("error kind = %v, want KindBounds", err)
	}

	c.fail(err)
	if c.state != ConnectionFailed {
		t.Errorf("state = %v, want ConnectionFailed", c.state)
	}
	if rec.regionChanged {
		t.Error("PostRegionChanged was called, want no event posted on bounds failure")
	}
}

type recordingEvents struct {
	regionChanged bool
}

func (r *recordingEvents) PostRegionChanged(Region)   { r.regionChanged = true }
func (r *recordingEvents) SignalRegionUpdated(Region) {}
func (r *recordingEvents) SignalCursorShapeChanged()  {}
