package rfbclient

import (
	"fmt"

	"github.com/eduview/rfbclient/encodings"
)

// ConnectionState is the client's connection lifecycle (§3). Transitions
// are monotonic forward within a session; the terminal states require
// an explicit reconnect (a fresh Connection).
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	HostUnreachable
	ConnectionFailed
	AuthFailed
	InvalidServer
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Connecting:
		return "Connecting"
	case HostUnreachable:
		return "HostUnreachable"
	case ConnectionFailed:
		return "ConnectionFailed"
	case AuthFailed:
		return "AuthFailed"
	case InvalidServer:
		return "InvalidServer"
	case Connected:
		return "Connected"
	default:
		return "Unknown"
	}
}

// Quality selects the advertised encoding set and, for the Demo tiers,
// triggers server-side color reduction (§3).
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityDemoLow
	QualityDemoMedium
	QualityDemoHigh
)

// isDemo reports whether q is one of the Demo* tiers.
func (q Quality) isDemo() bool { return q >= QualityDemoLow }

const (
	rfbProtocolVersionFormat = "RFB %03d.%03d\n"
	idsProtocolVersionFormat = "IDS %03d.%03d\n" // alternate "demo server" greeting, same 12-byte length
	protocolVersionLen       = 12
)

// maxEncodings bounds the SetEncodings list this client ever sends.
const maxEncodings = 16

// Connection drives the protocol state machine (C6) and owns every
// piece of per-connection decoder state (C4) and the message
// dispatcher (C5). It is not safe for concurrent use by more than one
// driver goroutine; the Screen and Cursor it exposes are safe for
// concurrent readers (§5).
type Connection struct {
	transport Transport
	wire      *wireCodec
	log       Logger

	state        ConnectionState
	quality      Quality
	isDemoServer bool
	useAuthFile  bool

	serverInit ServerInit

	screen                  *Screen
	scaledScreen            *ScaledScreen
	scaledScreenNeedsUpdate bool
	cursor                  *Cursor
	softwareCursor          bool

	zlib         zlibStreamSet
	rawBuffer    []byte
	tightPrevRow []uint16 // up to 2048 pixels * 3 channels
	tightPalette [256]uint32
	tightWidth   int
	tightColors  int

	scratch []byte // shared scratch buffer, len >= BufferSize

	events EventSink

	autoRefresh bool
}

// Config configures a new Connection. Auth and the underlying socket
// are owned by Transport; Config only carries the knobs §4.6 names.
type Config struct {
	Quality     Quality
	UseAuthFile bool
	Logger      Logger
	Events      EventSink
	AutoRefresh bool
}

// NewConnection constructs a Connection bound to transport, in the
// Disconnected state. Call Connect to run the handshake (§4.6).
func NewConnection(transport Transport, cfg Config) *Connection {
	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger
	}
	events := cfg.Events
	if events == nil {
		events = NoopEventSink{}
	}
	return &Connection{
		transport:   transport,
		wire:        newWireCodec(transport),
		log:         logger,
		state:       Disconnected,
		quality:     cfg.Quality,
		useAuthFile: cfg.UseAuthFile,
		cursor:      &Cursor{},
		scratch:     make([]byte, BufferSize),
		events:      events,
		autoRefresh: cfg.AutoRefresh,
	}
}

// State returns the current connection state.
func (c *Connection) State() ConnectionState { return c.state }

// Screen returns the decoded framebuffer. Valid once Connect reaches
// Connected.
func (c *Connection) Screen() *Screen { return c.screen }

// ScaledScreen returns the lazily-refreshed scaled copy.
func (c *Connection) ScaledScreen() *ScaledScreen { return c.scaledScreen }

// Cursor returns the cursor shape/position collaborator.
func (c *Connection) Cursor() *Cursor { return c.cursor }

// Connect runs the full handshake (§4.6): version exchange, auth
// delegation, ClientInit/ServerInit, pixel format and encoding
// negotiation, and the initial refresh request.
func (c *Connection) Connect() ConnectionState {
	c.state = Connecting

	if err := c.versionHandshake(); err != nil {
		c.log.Errorf("rfbclient: version handshake failed: %v", err)
		return c.state
	}

	mode := AuthNone
	if c.isDemoServer {
		if c.useAuthFile {
			mode = AuthChallengeViaFile
		} else {
			mode = AuthAppInternalChallenge
		}
	}
	if result := c.transport.AuthAgainstServer(mode); result != Connecting {
		c.state = result
		return c.state
	}

	if err := c.clientInit(); err != nil {
		c.log.Errorf("rfbclient: clientInit failed: %v", err)
		c.state = ConnectionFailed
		return c.state
	}

	if err := c.readServerInit(); err != nil {
		c.log.Errorf("rfbclient: serverInit failed: %v", err)
		c.state = ConnectionFailed
		return c.state
	}

	if err := c.sendPixelFormat(); err != nil {
		c.log.Errorf("rfbclient: SetPixelFormat failed: %v", err)
		c.state = ConnectionFailed
		return c.state
	}

	if err := c.sendEncodings(); err != nil {
		c.log.Errorf("rfbclient: SetEncodings failed: %v", err)
		c.state = ConnectionFailed
		return c.state
	}

	c.state = Connected

	c.screen = NewScreen(int(c.serverInit.FramebufferWidth), int(c.serverInit.FramebufferHeight))
	c.scaledScreen = NewScaledScreen(c.screen)
	c.rawBuffer = make([]byte, 0)
	c.tightPrevRow = make([]uint16, 2048*3)

	if !c.SendFramebufferUpdateRequest(0, 0, c.serverInit.FramebufferWidth, c.serverInit.FramebufferHeight, false) {
		c.state = ConnectionFailed
		return c.state
	}
	c.RequestUserInformation()

	return c.state
}

// versionHandshake implements §4.6 steps 1-2.
func (c *Connection) versionHandshake() error {
	greeting, err := c.wire.readExact(protocolVersionLen)
	if err != nil {
		c.state = ConnectionFailed
		return err
	}

	var major, minor int
	if _, err := fmt.Sscanf(string(greeting), rfbProtocolVersionFormat, &major, &minor); err != nil {
		if _, err2 := fmt.Sscanf(string(greeting), idsProtocolVersionFormat, &major, &minor); err2 != nil {
			c.state = InvalidServer
			return protocolErr("versionHandshake", fmt.Errorf("unrecognized greeting %q", greeting))
		}
		c.isDemoServer = true
	}

	if err := c.wire.writeAll(greeting); err != nil {
		c.state = ConnectionFailed
		return err
	}
	return nil
}

// clientInit sends ClientInit{shared=1} (§6).
func (c *Connection) clientInit() error {
	return c.wire.writeAll([]byte{1})
}

// readServerInit reads ServerInit and discards the desktop name (§4.6
// step 5).
func (c *Connection) readServerInit() error {
	header, err := c.wire.readExact(2 + 2 + 16 + 4)
	if err != nil {
		return err
	}
	c.serverInit.FramebufferWidth = beUint16(header[0:2])
	c.serverInit.FramebufferHeight = beUint16(header[2:4])
	c.serverInit.Format = unmarshalPixelFormat(header[4:20])
	nameLen := beUint32(header[20:24])

	name, err := c.wire.readExact(int(nameLen))
	if err != nil {
		return err
	}
	c.serverInit.DesktopName = string(name)
	return nil
}

// sendPixelFormat sends SetPixelFormat with LocalPixelFormat (§4.6 step
// 6, §6 wire layout).
func (c *Connection) sendPixelFormat() error {
	pf := LocalPixelFormat.marshal()
	msg := make([]byte, 0, 4+16)
	msg = append(msg, msgSetPixelFormat, 0, 0, 0)
	msg = append(msg, pf[:]...)
	return c.wire.writeAll(msg)
}

// sendEncodings builds and sends the SetEncodings preference list
// derived from quality (§4.6 step 7).
func (c *Connection) sendEncodings() error {
	var encs []encodings.Encoding
	if c.quality.isDemo() {
		encs = []encodings.Encoding{encodings.Raw, encodings.Italc, encodings.ItalcCursor}
	} else {
		encs = append(encs, encodings.Tight, encodings.Zlib,
			encodings.CoRRE, encodings.CopyRect, encodings.Raw,
			encodings.RichCursor, encodings.PointerPos)
		switch c.quality {
		case QualityLow:
			encs = append(encs, encodings.QualityLevel4)
		case QualityMedium:
			encs = append(encs, encodings.QualityLevel9)
		}
		encs = append(encs, encodings.CompressLevel4, encodings.Italc, encodings.ItalcCursor)
	}

	msg := make([]byte, 4, 4+4*len(encs))
	msg[0] = msgSetEncodings
	putBeUint16(msg[2:4], uint16(len(encs)))
	for _, e := range encs {
		var b [4]byte
		putBeUint32(b[:], uint32(e))
		msg = append(msg, b[:]...)
	}
	return c.wire.writeAll(msg)
}
