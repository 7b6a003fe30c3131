package object

import "encoding/hex"

// EncodeHex returns the lowercase hex encoding of b, length 2*len(b).
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes a hex string of even length into raw bytes. Odd
// length or any non-hex character fails with KindBadHex.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wrapErr(KindBadHex, "hex.decode", err)
	}
	return b, nil
}
