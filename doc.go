// Package rfbclient implements the remote framebuffer client core of a
// classroom/remote-assistance tool: it negotiates a pixel format and
// encoding set with a compatible display server, then decodes rectangle
// updates, cursor shape/position changes, and bell/cut-text notices into
// an in-memory Screen.
//
// Transport connection setup, authentication, and GUI rendering are
// external collaborators (see Transport and EventSink); this package
// owns the handshake state machine, the message dispatcher, and the
// family of rectangle decoders (Raw, CopyRect, CoRRE, Zlib, Tight,
// and the custom Italc/ItalcCursor encodings).
package rfbclient
