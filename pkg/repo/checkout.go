package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeerrry/gitc/pkg/object"
)

// CheckoutTree walks tree recursively, materializing it under dir. For
// each entry: mode "40000" creates a subdirectory and recurses;
// anything else is treated as a regular file and written with the
// referenced blob's body. Paths are joined relative to dir.
func (r *Repo) CheckoutTree(treeHash object.Hash, dir string) error {
	obj, err := r.Store.Read(treeHash)
	if err != nil {
		return fmt.Errorf("checkout %s: %w", treeHash, err)
	}
	if obj.Kind != object.TypeTree {
		return wrapBadHeader("checkout.tree", fmt.Errorf("%s is a %s, not a tree", treeHash, obj.Kind))
	}
	tree, err := object.UnmarshalTree(obj.Body)
	if err != nil {
		return fmt.Errorf("checkout %s: %w", treeHash, err)
	}

	for _, entry := range tree.Entries {
		path := filepath.Join(dir, entry.Name)
		entryHash := object.Hash(object.EncodeHex(entry.Digest[:]))

		if entry.Mode == object.TreeModeDir {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return wrapIO("checkout.mkdir", err)
			}
			if err := r.CheckoutTree(entryHash, path); err != nil {
				return err
			}
			continue
		}

		blobObj, err := r.Store.Read(entryHash)
		if err != nil {
			return fmt.Errorf("checkout %s: %w", entryHash, err)
		}
		if err := os.WriteFile(path, blobObj.Body, 0o644); err != nil {
			return wrapIO("checkout.write_file", err)
		}
	}

	return nil
}

func wrapBadHeader(op string, err error) *object.Error {
	return &object.Error{Kind: object.KindBadHeader, Op: op, Err: err}
}
