package transport

import (
	"fmt"

	"github.com/jeerrry/gitc/pkg/object"
)

// BuildWant produces the exact 63-byte want-request sequence for a
// 40-hex object identifier: a length-prefixed "want <id>\n" line, a
// flush, and a length-prefixed "done\n" line. No capability tokens are
// included.
func BuildWant(id object.Hash) []byte {
	var out []byte
	out = append(out, WriteLine([]byte(fmt.Sprintf("want %s\n", id)))...)
	out = append(out, WriteFlush()...)
	out = append(out, WriteLine([]byte("done\n"))...)
	return out
}
