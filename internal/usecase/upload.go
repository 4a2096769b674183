package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

// BlobStore persists uploaded files and exposes a public URL per key.
type BlobStore interface {
	// Put writes the raw bytes under key. It must refuse to overwrite an
	// existing object.
	Put(ctx context.Context, key string, data []byte) error
	PublicURL(key string) string
}

// Uploader stores admin uploads under collision-resistant keys. An upload
// never touches the content snapshot; the editor feeds the returned URL
// into a later section save, and those two steps are not transactional.
type Uploader struct {
	blobs BlobStore
	log   zerolog.Logger

	now func() time.Time
}

func NewUploader(blobs BlobStore, log zerolog.Logger) *Uploader {
	return &Uploader{blobs: blobs, log: log, now: time.Now}
}

// Store writes data and returns its public URL. The key combines a
// millisecond timestamp with a random suffix, so two uploads of files with
// the same original name land under distinct keys.
func (u *Uploader) Store(ctx context.Context, originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrNoFile
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	key := fmt.Sprintf("%d_%s%s", u.now().UnixMilli(), hex.EncodeToString(suffix), sanitizeExt(originalName))

	if err := u.blobs.Put(ctx, key, data); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	url := u.blobs.PublicURL(key)
	u.log.Info().Str("key", key).Int("bytes", len(data)).Msg("file uploaded")
	return url, nil
}

// sanitizeExt keeps only the original file's extension, lowercased and
// restricted to safe characters.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if ext == "" || ext == "." {
		return ""
	}
	var b strings.Builder
	b.WriteByte('.')
	for _, r := range ext[1:] {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return ""
	}
	return b.String()
}
