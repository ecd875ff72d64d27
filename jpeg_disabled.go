//go:build nojpeg

package rfbclient

import "image"

// jpegSupported is false in nojpeg builds; decodeTightJpeg fails fast
// with errJPEGDisabled instead of ever calling decodeJPEGImage.
const jpegSupported = false

func decodeJPEGImage(data []byte) (image.Image, error) {
	return nil, errJPEGDisabled
}
