package transport

import (
	"testing"

	"github.com/jeerrry/gitc/pkg/object"
)

func TestBuildWantExactBytes(t *testing.T) {
	id := object.Hash("0123456789abcdef0123456789abcdef01234567")
	got := BuildWant(id)

	want := "0032want 0123456789abcdef0123456789abcdef01234567\n" + "0000" + "0009done\n"
	if string(got) != want {
		t.Fatalf("BuildWant =\n%q\nwant\n%q", got, want)
	}
	if len(got) != 63 {
		t.Fatalf("len(BuildWant) = %d, want 63", len(got))
	}
}
