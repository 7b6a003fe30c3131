package object

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// inflateAll decodes a zlib stream that occupies the entire input slice.
// It sizes the output buffer at 8x the input and retries with doubled
// capacity whenever the decoder reports it ran out of output space.
func inflateAll(input []byte) ([]byte, error) {
	capacity := len(input) * 8
	if capacity == 0 {
		capacity = 64
	}
	for {
		out, err := inflateAllAttempt(input, capacity)
		if err == nil {
			return out, nil
		}
		if err == io.ErrShortBuffer {
			capacity *= 2
			continue
		}
		return nil, wrapErr(KindCorrupt, "zlib.inflate_all", err)
	}
}

func inflateAllAttempt(input []byte, capacity int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	buf := make([]byte, 0, capacity)
	out := bytes.NewBuffer(buf)
	limited := io.LimitReader(zr, int64(capacity))
	n, err := io.Copy(out, limited)
	if err != nil {
		return nil, err
	}
	if n == int64(capacity) {
		// May have hit the cap exactly before EOF; probe for one more byte.
		var probe [1]byte
		if m, _ := zr.Read(probe[:]); m > 0 {
			return nil, io.ErrShortBuffer
		}
	}
	return out.Bytes(), nil
}

// deflate compresses input at the default compression level.
func deflate(input []byte) []byte {
	var buf bytes.Buffer
	// zlib.NewWriterLevel with the default level never errors.
	zw, _ := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	_, _ = zw.Write(input)
	_ = zw.Close()
	return buf.Bytes()
}

// inflateStream runs the zlib decoder over input to its end-of-stream
// marker, returning the decoded bytes (allocated to expectedOut) and the
// exact number of input bytes consumed. This is the only way to walk a
// pack, since the pack concatenates independent compressed streams with
// no external length field delimiting each.
func inflateStream(input []byte, expectedOut int) ([]byte, int, error) {
	sub := bytes.NewReader(input)
	zr, err := zlib.NewReader(sub)
	if err != nil {
		return nil, 0, wrapErr(KindCorrupt, "zlib.inflate_stream", err)
	}
	out := make([]byte, 0, expectedOut)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		_ = zr.Close()
		return nil, 0, wrapErr(KindCorrupt, "zlib.inflate_stream", err)
	}
	if err := zr.Close(); err != nil {
		return nil, 0, wrapErr(KindCorrupt, "zlib.inflate_stream", err)
	}
	consumed := len(input) - sub.Len()
	return buf.Bytes(), consumed, nil
}
