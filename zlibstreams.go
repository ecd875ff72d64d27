package rfbclient

import (
	"bytes"
	"compress/zlib"
	"io"
)

// zlibStreamCount is 1 generic stream (index 0, used by the Zlib
// encoding) plus 4 Tight streams (indices 1..4, Tight stream_id 0..3),
// per §3 "Encoding-persistent state".
const zlibStreamCount = 5

// zlibStreamSet holds up to 5 persistent inflate contexts, lazily
// initialized and individually resettable (C3). Each active stream keeps
// one zlib.Reader over its own bytes.Buffer; every call appends that
// rectangle's compressed bytes to the buffer, so the deflate state
// carries over from one rectangle to the next until the stream is
// reset, as in the original's inflateInit-once / inflate-repeatedly
// pattern. Go's compress/zlib has no SyncFlush knob; reading exactly
// the expected output size stops at the server's flush point. Grounded
// on bigangryrobot-go-vnc/encodings.go's readCompressedData.
type zlibStreamSet struct {
	readers [zlibStreamCount]io.ReadCloser
	inputs  [zlibStreamCount]*bytes.Buffer
	active  [zlibStreamCount]bool
}

// reset releases stream i's inflate state and clears its active flag
// (§3 invariant 3: released exactly once per reset bit).
func (z *zlibStreamSet) reset(i int) {
	if !z.active[i] {
		return
	}
	if z.readers[i] != nil {
		z.readers[i].Close()
	}
	z.readers[i] = nil
	z.active[i] = false
}

// resetAll clears every stream's active flag, used when the connection
// closes (§4.5 "Closing resets every zlib stream's active flag").
func (z *zlibStreamSet) resetAll() {
	for i := range z.active {
		z.reset(i)
	}
}

// inflate appends compressed to stream i's input and decompresses from
// it until dst is full, starting a new zlib stream on first use or
// after a reset. Running out of compressed input before dst is filled
// is a fatal decode error (§3 invariant 3, §4.3 "running out of output
// space with bytes still available is a fatal decode error" — the
// Go-idiomatic inverse: running out of input before the expected
// output size is produced).
func (z *zlibStreamSet) inflate(i int, compressed []byte, dst []byte) error {
	if !z.active[i] {
		z.inputs[i] = new(bytes.Buffer)
		z.inputs[i].Write(compressed)
		zr, err := zlib.NewReader(z.inputs[i])
		if err != nil {
			return decodeErr("zlibStreamSet.inflate", err)
		}
		z.readers[i] = zr
		z.active[i] = true
	} else {
		z.inputs[i].Write(compressed)
	}

	if _, err := io.ReadFull(z.readers[i], dst); err != nil {
		return decodeErr("zlibStreamSet.inflate", err)
	}
	return nil
}
