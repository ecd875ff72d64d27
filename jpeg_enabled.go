//go:build !nojpeg

package rfbclient

import (
	"bytes"
	"image"
	"image/jpeg"
)

// jpegSupported reports whether this build includes Tight's optional
// Jpeg subencoding (mirrors the original's HAVE_LIBJPEG build flag;
// Go's image/jpeg is pure Go, so the split here is a capability toggle
// rather than a missing-library guard).
const jpegSupported = true

// decodeJPEGImage decodes a baseline/progressive JPEG stream.
func decodeJPEGImage(data []byte) (image.Image, error) {
	return jpeg.Decode(bytes.NewReader(data))
}
