package rfbclient

import "testing"

func TestReadCompactLen(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want uint32
	}{
		{"one byte", []byte{0x05}, 5},
		{"two bytes", []byte{0x80 | 0x7f, 0x01}, 0x7f | (1 << 7)},
		{"three bytes", []byte{0xff, 0xff, 0x03}, 0x7f | (0x7f << 7) | (3 << 14)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newWireCodec(newFakeTransport(tc.buf))
			got, err := w.readCompactLen()
			if err != nil {
				t.Fatalf("readCompactLen: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSwapUint(t *testing.T) {
	if got := swapUint16(0x1234); got != 0x3412 {
		t.Errorf("swapUint16 = %#x", got)
	}
	if got := swapUint32(0x12345678); got != 0x78563412 {
		t.Errorf("swapUint32 = %#x", got)
	}
}
