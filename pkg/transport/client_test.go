package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGetRefsHitsExpectedPath(t *testing.T) {
	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("0000"))
	}))
	defer ts.Close()

	c := NewClient(ClientOptions{}, nil)
	body, err := c.GetRefs(ts.URL)
	if err != nil {
		t.Fatalf("GetRefs: %v", err)
	}
	if string(body) != "0000" {
		t.Fatalf("body = %q, want %q", body, "0000")
	}
	if gotPath != "/.git/info/refs" {
		t.Fatalf("path = %q, want %q", gotPath, "/.git/info/refs")
	}
	if gotQuery != "service=git-upload-pack" {
		t.Fatalf("query = %q, want %q", gotQuery, "service=git-upload-pack")
	}
}

func TestClientFetchPackPostsBody(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = readAll(r)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("PACK"))
	}))
	defer ts.Close()

	c := NewClient(ClientOptions{}, nil)
	want := BuildWant("0123456789abcdef0123456789abcdef01234567")
	body, err := c.FetchPack(ts.URL, want)
	if err != nil {
		t.Fatalf("FetchPack: %v", err)
	}
	if string(body) != "PACK" {
		t.Fatalf("body = %q, want %q", body, "PACK")
	}
	if gotPath != "/.git/git-upload-pack" {
		t.Fatalf("path = %q, want %q", gotPath, "/.git/git-upload-pack")
	}
	if gotContentType != "application/x-git-upload-pack-request" {
		t.Fatalf("content-type = %q", gotContentType)
	}
	if string(gotBody) != string(want) {
		t.Fatalf("request body mismatch")
	}
}

func TestClientRejectsNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(ClientOptions{}, nil)
	if _, err := c.GetRefs(ts.URL); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func readAll(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
