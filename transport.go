package rfbclient

import "io"

// AuthChallenge selects which authentication challenge the Transport
// collaborator should perform during the handshake (§4.6 step 3),
// kept from the original ivsConnection's ItalcAuth* enum (see
// SPEC_FULL.md "SUPPLEMENTED FEATURES").
type AuthChallenge int

const (
	// AuthNone is used for non-demo servers: no authentication.
	AuthNone AuthChallenge = iota
	// AuthChallengeViaFile is used for demo servers when an auth file
	// is configured.
	AuthChallengeViaFile
	// AuthAppInternalChallenge is used for demo servers without an
	// auth file: an application-internal challenge/response.
	AuthAppInternalChallenge
)

// Transport is the external collaborator providing connection setup,
// authentication, and lower-layer framing (§6). This core never dials
// a socket or manages TLS/auth state itself.
type Transport interface {
	// ReadExact reads exactly n bytes or returns an error; a short
	// read is always an error, never a partial result.
	ReadExact(n int) ([]byte, error)

	// WriteAll writes buf in full or returns an error.
	WriteAll(buf []byte) error

	// HasBufferedData reports whether at least one byte is available
	// to read without blocking. The dispatcher's message loop (§4.5)
	// uses this to know when to stop polling for a cycle.
	HasBufferedData() bool

	// Close tears down the connection. Idempotent.
	Close() error

	// UnderlyingStream exposes the raw byte stream for collaborators
	// that need to read a variable-length, self-describing payload
	// directly (the ItalcCursor embedded image stream, §4.4).
	UnderlyingStream() io.Reader

	// AuthAgainstServer performs authentication per the requested
	// challenge type and returns the resulting ConnectionState.
	AuthAgainstServer(mode AuthChallenge) ConnectionState
}
