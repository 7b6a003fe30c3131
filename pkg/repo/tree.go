package repo

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jeerrry/gitc/pkg/object"
)

// WriteTree recursively builds a tree object from dir: regular files
// become blobs at mode "100644", directories recurse at mode "40000",
// and symlinks and other non-regular entries are silently skipped.
func (r *Repo) WriteTree(dir string) (object.Hash, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", wrapIO("tree.write", err)
	}

	names := make([]string, 0, len(entries))
	byName := make(map[string]os.DirEntry, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
		byName[e.Name()] = e
	}
	sort.Strings(names)

	var treeEntries []object.TreeEntry
	for _, name := range names {
		if name == ".git" {
			continue
		}
		e := byName[name]
		path := filepath.Join(dir, name)
		info, err := e.Info()
		if err != nil {
			return "", wrapIO("tree.write", err)
		}

		switch {
		case info.IsDir():
			subHash, err := r.WriteTree(path)
			if err != nil {
				return "", err
			}
			treeEntries = append(treeEntries, treeEntry(object.TreeModeDir, name, subHash))

		case info.Mode().IsRegular():
			blobHash, err := r.Store.WriteBlobFromPath(path)
			if err != nil {
				return "", err
			}
			treeEntries = append(treeEntries, treeEntry(object.TreeModeFile, name, blobHash))

		default:
			// Symlinks, devices, sockets, etc. are not tracked.
		}
	}

	body := object.MarshalTree(&object.Tree{Entries: treeEntries})
	return r.Store.Write(object.Frame(object.TypeTree, body))
}

func treeEntry(mode, name string, id object.Hash) object.TreeEntry {
	raw, _ := object.DecodeHex(string(id))
	var digest [20]byte
	copy(digest[:], raw)
	return object.TreeEntry{Name: name, Mode: mode, Digest: digest}
}
