package object

import (
	"bytes"
	"sort"
)

// MarshalTree encodes a Tree's entries as the concatenation of
// "<mode> <name>\0<20-byte digest>" records, with no separator between
// entries. Entries are sorted by name before encoding so the result is
// deterministic regardless of insertion order.
func MarshalTree(t *Tree) []byte {
	entries := make([]TreeEntry, len(t.Entries))
	copy(entries, t.Entries)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.Digest[:])
	}
	return buf.Bytes()
}

// UnmarshalTree decodes a tree body into its entries.
func UnmarshalTree(body []byte) (*Tree, error) {
	var entries []TreeEntry
	for len(body) > 0 {
		sp := bytes.IndexByte(body, ' ')
		if sp < 0 {
			return nil, wrapErr(KindBadHeader, "tree.unmarshal", errMissingSpace)
		}
		mode := string(body[:sp])
		rest := body[sp+1:]

		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, wrapErr(KindBadHeader, "tree.unmarshal", errNoNUL)
		}
		name := string(rest[:nul])
		rest = rest[nul+1:]

		if len(rest) < 20 {
			return nil, wrapErr(KindBadHeader, "tree.unmarshal", errLengthMismatch)
		}
		var digest [20]byte
		copy(digest[:], rest[:20])

		entries = append(entries, TreeEntry{Name: name, Mode: mode, Digest: digest})
		body = rest[20:]
	}
	return &Tree{Entries: entries}, nil
}
