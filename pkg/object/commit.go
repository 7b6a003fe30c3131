package object

import (
	"bytes"
	"fmt"
)

const treeLinePrefix = "tree "

// ParseCommit extracts the tree digest from the first line of a commit
// body ("tree <40-hex>\n") without interpreting anything that follows.
func ParseCommit(body []byte) (*Commit, error) {
	nl := bytes.IndexByte(body, '\n')
	if nl < 0 {
		return nil, wrapErr(KindBadHeader, "commit.parse", fmt.Errorf("missing newline after tree line"))
	}
	first := body[:nl]
	if !bytes.HasPrefix(first, []byte(treeLinePrefix)) {
		return nil, wrapErr(KindBadHeader, "commit.parse", fmt.Errorf("first line is not a tree line"))
	}
	treeHex := string(first[len(treeLinePrefix):])
	if len(treeHex) != 40 {
		return nil, wrapErr(KindBadHeader, "commit.parse", fmt.Errorf("tree digest is not 40 hex characters"))
	}
	if _, err := DecodeHex(treeHex); err != nil {
		return nil, wrapErr(KindBadHeader, "commit.parse", err)
	}
	return &Commit{TreeHash: Hash(treeHex), Rest: body[nl+1:]}, nil
}

// MarshalCommit builds a minimal commit body: the required tree line
// followed by zero or more parent lines, then a blank line and message.
func MarshalCommit(treeHash Hash, parents []Hash, message string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", treeHash)
	for _, p := range parents {
		fmt.Fprintf(&buf, "parent %s\n", p)
	}
	buf.WriteByte('\n')
	buf.WriteString(message)
	return buf.Bytes()
}
