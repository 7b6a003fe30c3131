package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// HashBytes computes the raw SHA-1 hash of data and returns it as a
// lowercase 40-character hex-encoded Hash.
func HashBytes(data []byte) Hash {
	sum := sha1.Sum(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// Frame constructs the canonical "<kind> <size>\0<body>" sequence used
// both as hash input and as the pre-compression on-disk form.
func Frame(objType ObjectType, body []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", objType, len(body))
	framed := make([]byte, 0, len(header)+len(body))
	framed = append(framed, header...)
	framed = append(framed, body...)
	return framed
}
