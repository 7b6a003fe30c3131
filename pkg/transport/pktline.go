// Package transport implements the length-prefixed line framing used to
// discover refs and to carry packfile bytes back inside a multiplexed
// side-band, plus the HTTP collaborator that speaks the smart-HTTP
// transport of a widely deployed distributed version-control protocol.
package transport

import (
	"fmt"

	"github.com/jeerrry/gitc/pkg/object"
)

const flushLine = "0000"

// Error mirrors object.Error so CLI-facing code can branch on Kind
// without importing two parallel error types.
type Error = object.Error

func errf(kind object.Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// ReadLine reads one length-prefixed line from the front of data. It
// returns the payload (nil, and isFlush=true, for a "0000" flush
// line), the number of bytes consumed from data, and a BadFrame error
// on an invalid hex prefix or a line whose declared length would run
// past the end of data.
func ReadLine(data []byte) (payload []byte, consumed int, isFlush bool, err error) {
	if len(data) < 4 {
		return nil, 0, false, errf(object.KindBadFrame, "pktline.read", "line truncated: need 4-byte length prefix, have %d bytes", len(data))
	}
	if string(data[:4]) == flushLine {
		return nil, 4, true, nil
	}

	total, err := decodeLineLen(data[:4])
	if err != nil {
		return nil, 0, false, errf(object.KindBadFrame, "pktline.read", "invalid length prefix %q: %v", data[:4], err)
	}
	if total < 4 {
		return nil, 0, false, errf(object.KindBadFrame, "pktline.read", "length prefix %d is smaller than the prefix itself", total)
	}
	if total > len(data) {
		return nil, 0, false, errf(object.KindBadFrame, "pktline.read", "line declares length %d but only %d bytes remain", total, len(data))
	}

	return data[4:total], total, false, nil
}

func decodeLineLen(prefix []byte) (int, error) {
	var n int
	for _, c := range prefix {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'a' && c <= 'f':
			v = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = int(c-'A') + 10
		default:
			return 0, fmt.Errorf("non-hex byte %q", c)
		}
		n = n<<4 | v
	}
	return n, nil
}

// WriteLine encodes payload as a single length-prefixed line: a
// four-character hex total length followed by the payload bytes.
func WriteLine(payload []byte) []byte {
	total := len(payload) + 4
	out := make([]byte, 0, total)
	out = append(out, []byte(fmt.Sprintf("%04x", total))...)
	out = append(out, payload...)
	return out
}

// WriteFlush returns the four-byte flush line.
func WriteFlush() []byte {
	return []byte(flushLine)
}
