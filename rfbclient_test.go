package rfbclient

import (
	"bytes"
	"io"
)

// fakeTransport is a minimal in-memory Transport for decoder and
// dispatcher tests: reads come from a fixed buffer, writes accumulate
// in Written, and HasBufferedData reflects what's left unread.
type fakeTransport struct {
	r       *bytes.Reader
	Written bytes.Buffer
}

func newFakeTransport(data []byte) *fakeTransport {
	return &fakeTransport{r: bytes.NewReader(data)}
}

func (f *fakeTransport) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(f.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (f *fakeTransport) WriteAll(buf []byte) error {
	f.Written.Write(buf)
	return nil
}

func (f *fakeTransport) HasBufferedData() bool { return f.r.Len() > 0 }

func (f *fakeTransport) Close() error { return nil }

func (f *fakeTransport) UnderlyingStream() io.Reader { return f.r }

func (f *fakeTransport) AuthAgainstServer(mode AuthChallenge) ConnectionState { return Connecting }

// testConnection builds a Connection with screen (w,h) wired to data,
// bypassing the full handshake — sufficient for exercising a single
// decoder or the dispatcher directly.
func testConnection(data []byte, w, h int) *Connection {
	c := NewConnection(newFakeTransport(data), Config{Logger: noopLogger{}})
	c.state = Connected
	c.serverInit = ServerInit{FramebufferWidth: uint16(w), FramebufferHeight: uint16(h)}
	c.screen = NewScreen(w, h)
	c.scaledScreen = NewScaledScreen(c.screen)
	c.rawBuffer = make([]byte, 0)
	c.tightPrevRow = make([]uint16, 2048*3)
	return c
}
