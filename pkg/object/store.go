package object

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the in-process read cache of inflated objects, keyed
// by hex identifier. A tree or commit object visited by both the pack
// decode step and the checkout walk inflates only once.
const cacheSize = 256

var (
	errNoNUL          = errors.New("no NUL separator in frame header")
	errMissingSpace   = errors.New("frame header missing space")
	errUnknownKind    = errors.New("unknown object kind word")
	errLengthMismatch = errors.New("declared length does not match body")
)

// Object is the return shape of Store.Read: the kind and the body view.
type Object struct {
	Kind ObjectType
	Body []byte
}

// Store is a content-addressed object store with a two-character
// fan-out directory layout: objects/ab/cdef0123...
type Store struct {
	root  string // ".git" directory
	cache *lru.Cache[Hash, Object]
}

// NewStore creates a Store rooted at the given ".git" directory. The
// objects/ subdirectory is created lazily on first write.
func NewStore(gitDir string) *Store {
	c, _ := lru.New[Hash, Object](cacheSize)
	return &Store{root: gitDir, cache: c}
}

// objectPath returns the filesystem path for a given identifier.
func (s *Store) objectPath(id Hash) string {
	return filepath.Join(s.root, "objects", string(id[:2]), string(id[2:]))
}

// Has reports whether the store contains an object with the given id.
func (s *Store) Has(id Hash) bool {
	_, err := os.Stat(s.objectPath(id))
	return err == nil
}

// Frame constructs the canonical "<kind> <size>\0<body>" sequence used
// both as hash input and as the pre-compression on-disk form.
func (s *Store) Frame(kind ObjectType, body []byte) []byte {
	return Frame(kind, body)
}

// Write computes the SHA-1 of framed, derives its shard path, deflates
// it, and writes it atomically via a temp file and rename. Writing an
// identifier that already exists is a no-op success, since content is
// by construction identical.
func (s *Store) Write(framed []byte) (Hash, error) {
	sum := sha1.Sum(framed)
	id := Hash(hex.EncodeToString(sum[:]))

	if s.Has(id) {
		return id, nil
	}

	dir := filepath.Join(s.root, "objects", string(id[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", wrapErr(KindIO, "store.write", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", wrapErr(KindIO, "store.write", err)
	}
	tmpName := tmp.Name()

	compressed := deflate(framed)
	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", wrapErr(KindIO, "store.write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", wrapErr(KindIO, "store.write", err)
	}

	dest := s.objectPath(id)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", wrapErr(KindIO, "store.write", err)
	}

	s.cacheFramed(id, framed)
	return id, nil
}

// WriteBlobFromPath reads a file, frames it as a blob, and writes it.
func (s *Store) WriteBlobFromPath(path string) (Hash, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", wrapErr(KindIO, "store.write_blob_from_path", err)
	}
	return s.Write(Frame(TypeBlob, data))
}

// Read resolves id's path, slurps and inflates the file, splits the
// frame header at the first NUL, and returns the kind and body.
func (s *Store) Read(id Hash) (Object, error) {
	if s.cache != nil {
		if obj, ok := s.cache.Get(id); ok {
			return obj, nil
		}
	}

	raw, err := os.ReadFile(s.objectPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return Object{}, wrapErr(KindNotFound, "store.read", err)
		}
		return Object{}, wrapErr(KindIO, "store.read", err)
	}

	framed, err := inflateAll(raw)
	if err != nil {
		return Object{}, err
	}

	obj, err := parseFramed(framed)
	if err != nil {
		return Object{}, err
	}

	if s.cache != nil {
		s.cache.Add(id, obj)
	}
	return obj, nil
}

func (s *Store) cacheFramed(id Hash, framed []byte) {
	if s.cache == nil {
		return
	}
	if obj, err := parseFramed(framed); err == nil {
		s.cache.Add(id, obj)
	}
}

func parseFramed(framed []byte) (Object, error) {
	nul := bytes.IndexByte(framed, 0)
	if nul < 0 {
		return Object{}, wrapErr(KindBadHeader, "store.read", errNoNUL)
	}
	header := string(framed[:nul])
	body := framed[nul+1:]

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return Object{}, wrapErr(KindBadHeader, "store.read", errMissingSpace)
	}
	kind := ObjectType(parts[0])
	switch kind {
	case TypeBlob, TypeTree, TypeCommit, TypeTag:
	default:
		return Object{}, wrapErr(KindBadHeader, "store.read", errUnknownKind)
	}

	declared, err := strconv.Atoi(parts[1])
	if err != nil {
		return Object{}, wrapErr(KindBadHeader, "store.read", err)
	}
	if declared != len(body) {
		return Object{}, wrapErr(KindBadHeader, "store.read", errLengthMismatch)
	}

	return Object{Kind: kind, Body: body}, nil
}
