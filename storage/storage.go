package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store puts objects under named buckets and hands back a public URL. Keys
// are server-generated so concurrent uploads cannot collide.
type Store struct {
	root    string
	baseURL string
}

func New(root, baseURL string) *Store {
	return &Store{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload writes data into the bucket under a fresh uuid key, keeping the
// original file extension, and returns the URL the object is served from.
func (s *Store) Upload(bucket, filename string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	key := uuid.New().String() + ext

	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, bucket, key), nil
}
