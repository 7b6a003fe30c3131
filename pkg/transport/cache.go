package transport

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/jeerrry/gitc/pkg/object"
)

// PackCache stores raw (still side-band-framed, pre-decode) pack bytes
// on disk, zstd-compressed, keyed by remote URL plus advertised HEAD.
// It is a pure performance optimization: a clone that hits the cache
// produces bit-for-bit the same checkout as one that fetches over the
// network, since decode (C4) sees the same raw pack bytes either way.
type PackCache struct {
	dir string
}

// NewPackCache roots a cache at .git/gitc-cache under gitDir.
func NewPackCache(gitDir string) *PackCache {
	return &PackCache{dir: filepath.Join(gitDir, "gitc-cache")}
}

func (c *PackCache) keyPath(remoteURL string, head object.Hash) string {
	sum := sha1.Sum([]byte(remoteURL + "\x00" + string(head)))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".pack.zst")
}

// Get returns the cached raw pack bytes for (remoteURL, head), or ok=false
// if nothing is cached.
func (c *PackCache) Get(remoteURL string, head object.Hash) (data []byte, ok bool) {
	compressed, err := os.ReadFile(c.keyPath(remoteURL, head))
	if err != nil {
		return nil, false
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, false
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Put stores raw pack bytes for (remoteURL, head), zstd-compressed.
// Failures are non-fatal: the cache is an optimization, not a
// correctness requirement.
func (c *PackCache) Put(remoteURL string, head object.Hash, raw []byte) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return
	}
	defer enc.Close()
	compressed := enc.EncodeAll(raw, nil)
	_ = os.WriteFile(c.keyPath(remoteURL, head), compressed, 0o644)
}
