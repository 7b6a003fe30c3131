package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeerrry/gitc/pkg/object"
)

func TestWriteTreeThenCheckoutTreeRoundTrip(t *testing.T) {
	srcDir := t.TempDir()
	r, err := Init(srcDir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := os.WriteFile(filepath.Join(srcDir, "top.txt"), []byte("top level"), 0o644); err != nil {
		t.Fatalf("write top.txt: %v", err)
	}
	subDir := filepath.Join(srcDir, "sub")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "nested.txt"), []byte("nested content"), 0o644); err != nil {
		t.Fatalf("write nested.txt: %v", err)
	}

	treeHash, err := r.WriteTree(srcDir)
	if err != nil {
		t.Fatalf("WriteTree: %v", err)
	}

	destDir := t.TempDir()
	if err := r.CheckoutTree(treeHash, destDir); err != nil {
		t.Fatalf("CheckoutTree: %v", err)
	}

	top, err := os.ReadFile(filepath.Join(destDir, "top.txt"))
	if err != nil {
		t.Fatalf("read top.txt: %v", err)
	}
	if string(top) != "top level" {
		t.Fatalf("top.txt = %q, want %q", top, "top level")
	}

	nested, err := os.ReadFile(filepath.Join(destDir, "sub", "nested.txt"))
	if err != nil {
		t.Fatalf("read nested.txt: %v", err)
	}
	if string(nested) != "nested content" {
		t.Fatalf("nested.txt = %q, want %q", nested, "nested content")
	}
}

func TestCheckoutTreeRejectsNonTreeObject(t *testing.T) {
	dir := t.TempDir()
	r, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	blobID, err := r.Store.Write(object.Frame(object.TypeBlob, []byte("not a tree")))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := r.CheckoutTree(blobID, t.TempDir()); err == nil {
		t.Fatal("expected error checking out a blob as a tree")
	}
}
