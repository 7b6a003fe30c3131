// Package repo implements the repository layout and the clone driver
// that orchestrates ref discovery, pack fetch, pack decode, and
// working-directory checkout.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeerrry/gitc/pkg/object"
)

const headFileContents = "ref: refs/heads/main\n"

// Repo is an open repository: its root directory and its object store.
type Repo struct {
	RootDir string
	GitDir  string
	Store   *object.Store
}

// Init creates the ".git/" skeleton at path: objects/, an empty refs/
// placeholder, and a default HEAD file, then returns the opened Repo.
func Init(path string) (*Repo, error) {
	gitDir := filepath.Join(path, ".git")

	if err := os.MkdirAll(filepath.Join(gitDir, "objects"), 0o755); err != nil {
		return nil, wrapIO("repo.init", err)
	}
	if err := os.MkdirAll(filepath.Join(gitDir, "refs"), 0o755); err != nil {
		return nil, wrapIO("repo.init", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(headFileContents), 0o644); err != nil {
		return nil, wrapIO("repo.init", err)
	}

	return &Repo{
		RootDir: path,
		GitDir:  gitDir,
		Store:   object.NewStore(gitDir),
	}, nil
}

// Open opens an existing repository rooted at path (path/.git must
// already exist).
func Open(path string) (*Repo, error) {
	gitDir := filepath.Join(path, ".git")
	if info, err := os.Stat(gitDir); err != nil || !info.IsDir() {
		return nil, wrapNotFound("repo.open", fmt.Errorf("%s is not a repository", path))
	}
	return &Repo{
		RootDir: path,
		GitDir:  gitDir,
		Store:   object.NewStore(gitDir),
	}, nil
}

func wrapIO(op string, err error) *object.Error {
	return &object.Error{Kind: object.KindIO, Op: op, Err: err}
}

func wrapNotFound(op string, err error) *object.Error {
	return &object.Error{Kind: object.KindNotFound, Op: op, Err: err}
}
