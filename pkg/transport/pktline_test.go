package transport

import (
	"bytes"
	"testing"
)

func TestReadLineDecodesPayload(t *testing.T) {
	payload, consumed, isFlush, err := ReadLine([]byte("0007abc"))
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if isFlush {
		t.Fatal("expected non-flush line")
	}
	if consumed != 7 {
		t.Fatalf("consumed = %d, want 7", consumed)
	}
	if string(payload) != "abc" {
		t.Fatalf("payload = %q, want %q", payload, "abc")
	}
}

func TestReadLineRecognizesFlush(t *testing.T) {
	_, consumed, isFlush, err := ReadLine([]byte("0000trailing"))
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if !isFlush {
		t.Fatal("expected flush line")
	}
	if consumed != 4 {
		t.Fatalf("consumed = %d, want 4", consumed)
	}
}

func TestReadLineRejectsNonHexPrefix(t *testing.T) {
	if _, _, _, err := ReadLine([]byte("000gabc")); err == nil {
		t.Fatal("expected error for non-hex length prefix")
	}
}

func TestReadLineRejectsTruncatedLine(t *testing.T) {
	if _, _, _, err := ReadLine([]byte("0010ab")); err == nil {
		t.Fatal("expected error when declared length exceeds available bytes")
	}
}

func TestWriteLineRoundTrip(t *testing.T) {
	line := WriteLine([]byte("hello\n"))
	payload, consumed, isFlush, err := ReadLine(line)
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if isFlush {
		t.Fatal("unexpected flush")
	}
	if consumed != len(line) {
		t.Fatalf("consumed = %d, want %d", consumed, len(line))
	}
	if !bytes.Equal(payload, []byte("hello\n")) {
		t.Fatalf("payload = %q, want %q", payload, "hello\n")
	}
}

func TestWriteFlushIsFourBytes(t *testing.T) {
	if got := WriteFlush(); string(got) != "0000" {
		t.Fatalf("WriteFlush = %q, want %q", got, "0000")
	}
}
