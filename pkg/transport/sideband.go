package transport

import (
	"bytes"

	"github.com/jeerrry/gitc/pkg/object"
)

const (
	sidebandPack     = 0x01
	sidebandProgress = 0x02
	sidebandError    = 0x03
)

// StripSideband scans an upload-pack response as a sequence of
// length-prefixed lines and returns the concatenated channel-1
// (pack-data) payloads with their channel byte stripped. Lines that
// are neither side-band nor flush (e.g. an initial "NAK") and
// interleaved flushes are skipped without terminating the scan. If no
// channel-1 payload was collected, a fallback locates the ASCII
// substring "PACK" and returns the slice from there to the end of the
// response. NoPack is returned only if both strategies find nothing.
func StripSideband(data []byte) ([]byte, error) {
	var pack bytes.Buffer
	pos := 0

	for pos < len(data) {
		payload, consumed, isFlush, err := ReadLine(data[pos:])
		if err != nil {
			break
		}
		pos += consumed
		if isFlush || len(payload) == 0 {
			continue
		}

		switch payload[0] {
		case sidebandPack:
			pack.Write(payload[1:])
		case sidebandProgress, sidebandError:
			// Discarded; the error channel may be surfaced by a caller
			// that wants progress, but the core does so silently.
		default:
			// Not side-band framed (e.g. a bare "NAK\n"); skip.
		}
	}

	if pack.Len() > 0 {
		return pack.Bytes(), nil
	}

	if idx := bytes.Index(data, []byte("PACK")); idx >= 0 {
		return data[idx:], nil
	}

	return nil, errf(object.KindNoPack, "sideband.strip", "no packfile found in response")
}
