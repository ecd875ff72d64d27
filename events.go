package rfbclient

// EventSink is the external collaborator (§6) notified of Screen and
// cursor changes. All regions are in Screen coordinates (§4.7).
type EventSink interface {
	// PostRegionChanged is emitted after every FramebufferUpdate that
	// touched at least one pixel, and after cursor position/shape
	// changes, with the union of affected rectangles.
	PostRegionChanged(region Region)

	// SignalRegionUpdated additionally fires for qualities below
	// QualityDemoLow, so low-bandwidth observer UIs can repaint
	// selectively without depending on PostRegionChanged's semantics.
	SignalRegionUpdated(region Region)

	// SignalCursorShapeChanged fires whenever RichCursor/XCursor/
	// ItalcCursor decodes a new shape.
	SignalCursorShapeChanged()
}

// NoopEventSink discards every event; the default when Config.Events is
// nil.
type NoopEventSink struct{}

func (NoopEventSink) PostRegionChanged(Region)     {}
func (NoopEventSink) SignalRegionUpdated(Region)   {}
func (NoopEventSink) SignalCursorShapeChanged()    {}
