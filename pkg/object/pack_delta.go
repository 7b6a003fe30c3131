package object

import (
	"bytes"
	"fmt"
	"io"
)

// decodeDeltaVarint reads a little-endian, seven-bit-per-byte
// continuation varint from a delta instruction stream.
func decodeDeltaVarint(r io.ByteReader) (uint64, error) {
	var (
		value uint64
		shift uint
	)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		value |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, nil
		}
		shift += 7
		if shift > 63 {
			return 0, fmt.Errorf("delta varint too large")
		}
	}
}

// applyDelta reconstructs a target object from base according to the
// delta instruction stream in delta: two leading varints (src_size,
// tgt_size), then a sequence of COPY/INSERT instructions. cmd == 0 is
// reserved and is a no-op, not an error. Every COPY and the final
// result length are bounds-checked against base and tgt_size.
func applyDelta(base, delta []byte) ([]byte, error) {
	dr := bytes.NewReader(delta)

	srcSize, err := decodeDeltaVarint(dr)
	if err != nil {
		return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("read src_size: %w", err))
	}
	if int(srcSize) != len(base) {
		return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("src_size mismatch: got %d want %d", srcSize, len(base)))
	}
	tgtSize, err := decodeDeltaVarint(dr)
	if err != nil {
		return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("read tgt_size: %w", err))
	}

	out := make([]byte, 0, tgtSize)
	for dr.Len() > 0 {
		cmd, err := dr.ReadByte()
		if err != nil {
			return nil, wrapErr(KindCorrupt, "delta.apply", err)
		}

		switch {
		case cmd == 0:
			// Reserved: no-op.
			continue

		case cmd&0x80 != 0:
			var offset, size int64
			for bit, shift := byte(0x01), uint(0); bit <= 0x08; bit, shift = bit<<1, shift+8 {
				if cmd&bit == 0 {
					continue
				}
				b, err := dr.ReadByte()
				if err != nil {
					return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("copy offset byte: %w", err))
				}
				offset |= int64(b) << shift
			}
			for bit, shift := byte(0x10), uint(0); bit <= 0x40; bit, shift = bit<<1, shift+8 {
				if cmd&bit == 0 {
					continue
				}
				b, err := dr.ReadByte()
				if err != nil {
					return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("copy size byte: %w", err))
				}
				size |= int64(b) << shift
			}
			if size == 0 {
				size = 0x10000
			}
			if offset < 0 || size < 0 || offset+size > int64(len(base)) {
				return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("copy out of base range"))
			}
			if int64(len(out))+size > int64(tgtSize) {
				return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("copy exceeds target size"))
			}
			out = append(out, base[offset:offset+size]...)

		default:
			n := int(cmd)
			if int64(len(out))+int64(n) > int64(tgtSize) {
				return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("insert exceeds target size"))
			}
			insert := make([]byte, n)
			if _, err := io.ReadFull(dr, insert); err != nil {
				return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("insert: %w", err))
			}
			out = append(out, insert...)
		}
	}

	if uint64(len(out)) != tgtSize {
		return nil, wrapErr(KindCorrupt, "delta.apply", fmt.Errorf("result size mismatch: got %d want %d", len(out), tgtSize))
	}
	return out, nil
}
