/*
Package encodings provides constants for the known RFB encoding and
pseudo-encoding types, standard plus the custom extensions this client
negotiates.
https://tools.ietf.org/html/rfc6143#section-7.7
*/
package encodings

// Encoding represents a known RFB encoding or pseudo-encoding type. The
// wire representation is a signed 32-bit big-endian integer; negative
// values are reserved for pseudo-encodings and private extensions.
type Encoding int32

//go:generate stringer -type=Encoding

const (
	// Standard encodings (RFC 6143 §7.7).
	Raw      Encoding = 0
	CopyRect Encoding = 1
	RRE      Encoding = 2
	CoRRE    Encoding = 4
	Hextile  Encoding = 5
	Zlib     Encoding = 6
	Tight    Encoding = 7

	// Standard pseudo-encodings (RFC 6143 §7.8, TightVNC rfbproto.h).
	PointerPos     Encoding = -232 // 0xFFFFFF18
	LastRect       Encoding = -224 // 0xFFFFFF20
	XCursor        Encoding = -240 // 0xFFFFFF10
	RichCursor     Encoding = -239 // 0xFFFFFF11
	QualityLevel0  Encoding = -32  // 0xFFFFFFE0
	QualityLevel4  Encoding = -28  // 0xFFFFFFE4
	QualityLevel9  Encoding = -23  // 0xFFFFFFE9
	CompressLevel0 Encoding = -256 // 0xFFFFFF00
	CompressLevel4 Encoding = -252 // 0xFFFFFF04

	// Custom encodings reserved in the compatible ("demo") server's
	// private range. Not part of the standard RFB registry; chosen
	// here in the ASCII-tagged style ("ITC" = "iTALC") common to other
	// private RFB extensions (c.f. TightVNC's own "tight" pseudo
	// encodings).
	Italc       Encoding = 0x49544301 // "ITC\x01"
	ItalcCursor Encoding = 0x49544302 // "ITC\x02"

	// ItalcGetUserInformation names the side-channel request asking the
	// server's extension for the logged-in username. This value is not
	// put on the wire: the request itself is the one-byte client message
	// type sent by Connection.RequestUserInformation, see SPEC_FULL.md
	// "SUPPLEMENTED FEATURES".
	ItalcGetUserInformation Encoding = 0x49544303 // "ITC\x03"
)

// String implements fmt.Stringer. Hand-written rather than generated,
// since the generator isn't run as part of this module's build.
func (e Encoding) String() string {
	switch e {
	case Raw:
		return "Raw"
	case CopyRect:
		return "CopyRect"
	case RRE:
		return "RRE"
	case CoRRE:
		return "CoRRE"
	case Hextile:
		return "Hextile"
	case Zlib:
		return "Zlib"
	case Tight:
		return "Tight"
	case PointerPos:
		return "PointerPos"
	case LastRect:
		return "LastRect"
	case XCursor:
		return "XCursor"
	case RichCursor:
		return "RichCursor"
	case QualityLevel0, QualityLevel4, QualityLevel9:
		return "QualityLevel"
	case CompressLevel0, CompressLevel4:
		return "CompressLevel"
	case Italc:
		return "Italc"
	case ItalcCursor:
		return "ItalcCursor"
	case ItalcGetUserInformation:
		return "ItalcGetUserInformation"
	default:
		return "Unknown"
	}
}

// IsCursorPseudo reports whether enc carries cursor data rather than
// framebuffer pixels — used by the dispatcher (§4.5) to route a rect to
// the cursor decoders (skipping the framebuffer bounds check and the
// pixel-region union) and to set softwareCursor.
func (e Encoding) IsCursorPseudo() bool {
	switch e {
	case PointerPos, XCursor, RichCursor, ItalcCursor:
		return true
	default:
		return false
	}
}
