package object

import "testing"

func TestTreeMarshalUnmarshalRoundTrip(t *testing.T) {
	var aDigest, bDigest [20]byte
	aDigest[0] = 0xaa
	bDigest[0] = 0xbb

	tree := &Tree{Entries: []TreeEntry{
		{Name: "zebra.txt", Mode: TreeModeFile, Digest: aDigest},
		{Name: "apple", Mode: TreeModeDir, Digest: bDigest},
	}}

	body := MarshalTree(tree)
	got, err := UnmarshalTree(body)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(got.Entries))
	}
	if got.Entries[0].Name != "apple" || got.Entries[1].Name != "zebra.txt" {
		t.Fatalf("entries not sorted by name: %+v", got.Entries)
	}
}

func TestTreeUnmarshalRejectsTruncatedDigest(t *testing.T) {
	body := []byte(TreeModeFile + " short\x00" + "tooshort")
	if _, err := UnmarshalTree(body); err == nil {
		t.Fatal("expected error for truncated digest")
	}
}
