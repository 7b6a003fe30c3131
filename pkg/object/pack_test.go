package object

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func buildEntryHeader(t PackObjectType, size uint64) []byte {
	first := byte(t&0x7) << 4
	first |= byte(size & 0x0f)
	size >>= 4
	var out []byte
	if size > 0 {
		first |= 0x80
	}
	out = append(out, first)
	for size > 0 {
		b := byte(size & 0x7f)
		size >>= 7
		if size > 0 {
			b |= 0x80
		}
		out = append(out, b)
	}
	return out
}

func TestParsePackHeaderRejectsBadMagic(t *testing.T) {
	bad := make([]byte, packHeaderSize)
	copy(bad, "JUNK")
	if _, err := parsePackHeader(bad); err == nil {
		t.Fatal("expected error for invalid magic")
	}
}

func TestParsePackHeaderRejectsUnsupportedVersion(t *testing.T) {
	buf := make([]byte, packHeaderSize)
	copy(buf, packMagic[:])
	binary.BigEndian.PutUint32(buf[4:8], 3)
	binary.BigEndian.PutUint32(buf[8:12], 0)
	if _, err := parsePackHeader(buf); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestDecodePackEntryHeaderRoundTrip(t *testing.T) {
	cases := []struct {
		objType PackObjectType
		size    uint64
	}{
		{PackBlob, 0},
		{PackCommit, 15},
		{PackTree, 16},
		{PackBlob, 1 << 20},
		{PackRefDelta, 200},
	}
	for _, c := range cases {
		data := buildEntryHeader(c.objType, c.size)
		gotType, gotSize, consumed, err := decodePackEntryHeader(data)
		if err != nil {
			t.Fatalf("decodePackEntryHeader: %v", err)
		}
		if gotType != c.objType || gotSize != c.size {
			t.Fatalf("decode = (%d,%d), want (%d,%d)", gotType, gotSize, c.objType, c.size)
		}
		if consumed != len(data) {
			t.Fatalf("consumed = %d, want %d", consumed, len(data))
		}
	}
}

// TestDecodePackSingleBlob builds a minimal pack image containing one
// non-delta blob entry and verifies DecodePack persists it and returns
// its identifier.
func TestDecodePackSingleBlob(t *testing.T) {
	s := newTestStore(t)

	body := []byte("hi")
	header := buildEntryHeader(PackBlob, uint64(len(body)))
	compressed := deflate(body)

	var buf bytes.Buffer
	buf.Write(packMagic[:])
	binary.Write(&buf, binary.BigEndian, uint32(supportedPackVersion))
	binary.Write(&buf, binary.BigEndian, uint32(1))
	buf.Write(header)
	buf.Write(compressed)

	ids, err := DecodePack(s, buf.Bytes())
	if err != nil {
		t.Fatalf("DecodePack: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("got %d ids, want 1", len(ids))
	}

	obj, err := s.Read(ids[0])
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if obj.Kind != TypeBlob || string(obj.Body) != "hi" {
		t.Fatalf("Read = %+v, want blob %q", obj, "hi")
	}
}

func TestDecodePackRejectsOffsetDelta(t *testing.T) {
	s := newTestStore(t)

	header := buildEntryHeader(PackOfsDelta, 10)
	var buf bytes.Buffer
	buf.Write(packMagic[:])
	binary.Write(&buf, binary.BigEndian, uint32(supportedPackVersion))
	binary.Write(&buf, binary.BigEndian, uint32(1))
	buf.Write(header)

	if _, err := DecodePack(s, buf.Bytes()); err == nil {
		t.Fatal("expected error for offset-delta entry")
	}
}
