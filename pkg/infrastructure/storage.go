package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore is the upload blob store: a local directory served statically,
// one file per object key.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore prepares the upload directory. baseURL is the public
// address the directory is served under, e.g. https://example.com.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes data under key. O_EXCL guards against overwriting on a key
// collision; the caller's key scheme is expected to make that rare.
func (s *DiskStore) Put(ctx context.Context, key string, data []byte) error {
	f, err := os.OpenFile(filepath.Join(s.dir, filepath.Base(key)), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *DiskStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, filepath.Base(key))
}
