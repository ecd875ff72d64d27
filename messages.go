package rfbclient

import "encoding/binary"

// Client-to-server message types (§6).
const (
	msgSetPixelFormat           = 0
	msgSetEncodings             = 2
	msgFramebufferUpdateRequest = 3
	msgKeyEvent                 = 4
	msgPointerEvent             = 5
	// msgItalcGetUserInformation is the custom side-channel request
	// added by SPEC_FULL.md's "SUPPLEMENTED FEATURES": a one-byte client
	// message type outside the standard client message numbers.
	msgItalcGetUserInformation = 254
)

// Server-to-client message types (§6).
const (
	smsgFramebufferUpdate    = 0
	smsgSetColourMapEntries  = 1
	smsgBell                 = 2
	smsgServerCutText        = 3
)

func beUint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func beUint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func putBeUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func putBeUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
