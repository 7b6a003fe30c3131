package object

import "testing"

func TestHexRoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x23, 0xab, 0xcd, 0xef}
	enc := EncodeHex(raw)
	if enc != "0123abcdef" {
		t.Fatalf("EncodeHex = %q, want %q", enc, "0123abcdef")
	}

	dec, err := DecodeHex(enc)
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	if string(dec) != string(raw) {
		t.Fatalf("DecodeHex = %x, want %x", dec, raw)
	}
}

func TestDecodeHexRejectsOddLength(t *testing.T) {
	if _, err := DecodeHex("abc"); err == nil {
		t.Fatal("expected error for odd-length hex string")
	}
}

func TestDecodeHexRejectsNonHexCharacters(t *testing.T) {
	if _, err := DecodeHex("zz"); err == nil {
		t.Fatal("expected error for non-hex characters")
	}
}
