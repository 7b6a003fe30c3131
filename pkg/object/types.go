package object

// Hash is a 40-character lowercase hex-encoded SHA-1 digest: the
// canonical external identifier of a stored object.
type Hash string

// ObjectType identifies the kind of object stored. Tags are accepted by
// the framing but not otherwise exercised by the core.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
	TypeTag    ObjectType = "tag"
)

const (
	// TreeModeDir marks a tree entry as a subdirectory.
	TreeModeDir = "40000"
	// TreeModeFile marks a tree entry as a regular file. Any mode other
	// than TreeModeDir is treated as a regular file at checkout time.
	TreeModeFile = "100644"
)

// Blob holds raw file content.
type Blob struct {
	Data []byte
}

// TreeEntry is one entry in a tree object's body: mode, name, and the
// raw 20-byte digest of the referenced object.
type TreeEntry struct {
	Name   string
	Mode   string
	Digest [20]byte
}

// Tree holds a lexicographically sorted, unique-by-name list of entries.
type Tree struct {
	Entries []TreeEntry
}

// Commit holds the parsed tree digest plus the opaque remainder of the
// commit body the core does not interpret.
type Commit struct {
	TreeHash Hash
	Rest     []byte
}
