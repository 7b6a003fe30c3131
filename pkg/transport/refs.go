package transport

import (
	"github.com/jeerrry/gitc/pkg/object"
)

// ParseHead interprets a git-upload-pack ref-discovery response as a
// sequence of length-prefixed lines. A service-announcement block
// precedes the ref list and is terminated by the first flush; the
// first line after that flush is the HEAD advertisement, whose payload
// begins with a 40-character lowercase hex digest.
func ParseHead(data []byte) (object.Hash, error) {
	pos := 0
	sawFlush := false

	for pos < len(data) {
		payload, consumed, isFlush, err := ReadLine(data[pos:])
		if err != nil {
			return "", err
		}
		pos += consumed

		if isFlush {
			sawFlush = true
			continue
		}
		if !sawFlush {
			continue
		}

		if len(payload) < 40 {
			return "", errf(object.KindBadFrame, "refs.parse_head", "ref line payload shorter than a 40-hex digest")
		}
		idHex := string(payload[:40])
		if _, err := object.DecodeHex(idHex); err != nil {
			return "", errf(object.KindBadFrame, "refs.parse_head", "ref line does not start with valid hex: %v", err)
		}
		return object.Hash(idHex), nil
	}

	return "", errf(object.KindNotFound, "refs.parse_head", "no ref line followed the service-announcement flush")
}
