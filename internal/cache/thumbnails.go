package cache

// Package cache stores thumbnails on disk, content-addressed by entity kind
// and id. Cached files are returned unconditionally with no freshness check;
// the cache is unbounded and never evicted.

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tmxb/tmx-browser/internal/model"
)

// ErrUnavailable signals that no thumbnail could be produced; callers show a
// placeholder instead of an error dialog.
var ErrUnavailable = errors.New("thumbnail unavailable")

// Fetcher retrieves raw thumbnail bytes from the remote catalog.
type Fetcher interface {
	FetchThumbnail(ctx context.Context, kind model.ItemKind, id int) ([]byte, error)
}

// Thumbnails is the on-disk thumbnail cache.
type Thumbnails struct {
	dir     string
	fetcher Fetcher
	// autoFetch mirrors the auto_cache_thumbnails setting; when false a
	// cache miss never goes to the network.
	autoFetch bool
}

// NewThumbnails creates a cache rooted at dir.
func NewThumbnails(dir string, fetcher Fetcher, autoFetch bool) *Thumbnails {
	return &Thumbnails{dir: dir, fetcher: fetcher, autoFetch: autoFetch}
}

// Path returns the deterministic cache location for an entity.
func (t *Thumbnails) Path(kind model.ItemKind, id int) string {
	if kind == model.KindMappack {
		return filepath.Join(t.dir, fmt.Sprintf("mappack_%d.jpg", id))
	}
	return filepath.Join(t.dir, fmt.Sprintf("%d.jpg", id))
}

// GetOrFetch returns the local path for an entity's thumbnail. A file already
// in the cache wins unconditionally. On a miss the thumbnail is fetched once
// and written through; any failure maps to ErrUnavailable.
func (t *Thumbnails) GetOrFetch(ctx context.Context, kind model.ItemKind, id int) (string, error) {
	path := t.Path(kind, id)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if !t.autoFetch || t.fetcher == nil {
		return "", ErrUnavailable
	}

	data, err := t.fetcher.FetchThumbnail(ctx, kind, id)
	if err != nil {
		log.Printf("[THUMBNAIL] fetch %s/%d: %v", kind, id, err)
		return "", ErrUnavailable
	}

	if err := os.MkdirAll(t.dir, 0755); err != nil {
		log.Printf("[THUMBNAIL] create cache dir: %v", err)
		return "", ErrUnavailable
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("[THUMBNAIL] write %s: %v", path, err)
		return "", ErrUnavailable
	}
	return path, nil
}
