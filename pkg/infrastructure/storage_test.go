package infrastructure

import (
	"context"
	"testing"
)

func TestDiskStorePutRefusesOverwrite(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "https://example.com/")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Put(ctx, "123_abcd.png", []byte("one")); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := s.Put(ctx, "123_abcd.png", []byte("two")); err == nil {
		t.Error("second Put on the same key must fail, not overwrite")
	}
}

func TestDiskStorePublicURL(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "https://example.com/")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	got := s.PublicURL("123_abcd.png")
	want := "https://example.com/uploads/123_abcd.png"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
	// path traversal in a key must not escape the uploads prefix
	if got := s.PublicURL("../../etc/passwd"); got != "https://example.com/uploads/passwd" {
		t.Errorf("traversal key mapped to %q", got)
	}
}
