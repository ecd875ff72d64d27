package rfbclient

import "math/bits"

// Buffer sizing per §3 "Encoding-persistent state": the scratch I/O
// buffer is at least 16384 bytes. Zlib and Tight read each rectangle's
// compressed bytes whole and keep no separate staging buffer.
// BufferSize is the shared scratch buffer size used by Raw decoding's
// row-batching.
const BufferSize = 16384

// wireCodec implements C1: endianness helpers and exact-count
// read/write on top of a Transport. All multi-byte wire integers are
// big-endian.
type wireCodec struct {
	t Transport
}

func newWireCodec(t Transport) *wireCodec {
	return &wireCodec{t: t}
}

// readExact reads exactly n bytes from the transport.
func (w *wireCodec) readExact(n int) ([]byte, error) {
	b, err := w.t.ReadExact(n)
	if err != nil {
		return nil, transportErr("readExact", err)
	}
	return b, nil
}

// writeAll writes buf in full to the transport.
func (w *wireCodec) writeAll(buf []byte) error {
	if err := w.t.WriteAll(buf); err != nil {
		return transportErr("writeAll", err)
	}
	return nil
}

// hasData reports whether the transport has buffered input.
func (w *wireCodec) hasData() bool {
	return w.t.HasBufferedData()
}

// readCompactLen reads TightVNC's "compact length" varint: 1-3 bytes;
// the first two carry 7 data bits each with a continuation bit in bit
// 7, the third carries 8 data bits, up to 22 bits total.
func (w *wireCodec) readCompactLen() (uint32, error) {
	var length uint32
	for i := 0; i < 3; i++ {
		b, err := w.readExact(1)
		if err != nil {
			return 0, err
		}
		if i == 2 {
			length |= uint32(b[0]) << 14
			break
		}
		length |= uint32(b[0]&0x7f) << (7 * uint(i))
		if b[0]&0x80 == 0 {
			break
		}
	}
	return length, nil
}

// swapUint16 reverses the byte order of a 16-bit value on every host.
// Provided for parity with the C1 contract's byte-swap helpers; the
// decoders themselves read wire integers through encoding/binary
// (beUint16/beUint32, nativePixel) and do not call it.
func swapUint16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// swapUint32 reverses the byte order of a 32-bit value.
func swapUint32(v uint32) uint32 { return bits.ReverseBytes32(v) }
