package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps one JSON file per artifact under a directory, fanned out
// into subdirectories by the first two hex digits of the key hash. Each file
// records the key it was written for, so a hash collision reads as a miss.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

type fileEntry struct {
	Key       string    `json:"key"`
	Artifact  Artifact  `json:"artifact"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Get implements [Cache]. Unreadable, expired or mismatched entries are
// removed and read as misses.
func (c *FileCache) Get(_ context.Context, key string) (Artifact, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Artifact{}, false, nil
	}
	if err != nil {
		return Artifact{}, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(data, &e); err != nil || e.Key != key {
		// A partial write from an interrupted run reads as a miss.
		_ = os.Remove(path)
		return Artifact{}, false, nil
	}
	if !e.ExpiresAt.IsZero() && c.now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return Artifact{}, false, nil
	}
	return e.Artifact, true, nil
}

// Put implements [Cache]. The entry is written to a temporary file and
// renamed into place.
func (c *FileCache) Put(_ context.Context, key string, a Artifact, ttl time.Duration) error {
	now := c.now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	e := fileEntry{Key: key, Artifact: a}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete implements [Cache].
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps key to <dir>/<first two hex digits>/<rest>.json.
func (c *FileCache) path(key string) string {
	h := sha256Hex([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
