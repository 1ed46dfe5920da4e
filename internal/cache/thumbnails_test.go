package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmxb/tmx-browser/internal/model"
)

type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) FetchThumbnail(_ context.Context, _ model.ItemKind, _ int) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func TestPathLayout(t *testing.T) {
	c := NewThumbnails("/cache", nil, true)

	if got := c.Path(model.KindMap, 42); got != filepath.Join("/cache", "42.jpg") {
		t.Errorf("map path = %q", got)
	}
	if got := c.Path(model.KindMappack, 55); got != filepath.Join("/cache", "mappack_55.jpg") {
		t.Errorf("mappack path = %q", got)
	}
}

func TestGetOrFetchWritesThrough(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{data: []byte("jpegbytes")}
	c := NewThumbnails(dir, f, true)

	path, err := c.GetOrFetch(context.Background(), model.KindMap, 42)
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpegbytes" {
		t.Errorf("cached bytes = %q", data)
	}
	if f.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", f.calls)
	}
}

func TestCachedFileWinsWithoutFetch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "42.jpg"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	f := &fakeFetcher{data: []byte("new")}
	c := NewThumbnails(dir, f, true)

	path, err := c.GetOrFetch(context.Background(), model.KindMap, 42)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Error("existing cache file must be returned unconditionally")
	}
	if f.calls != 0 {
		t.Errorf("fetch calls = %d, want 0", f.calls)
	}
}

func TestFetchDisabled(t *testing.T) {
	f := &fakeFetcher{data: []byte("x")}
	c := NewThumbnails(t.TempDir(), f, false)

	_, err := c.GetOrFetch(context.Background(), model.KindMap, 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if f.calls != 0 {
		t.Error("disabled cache must not hit the network")
	}
}

func TestFetchFailureIsUnavailable(t *testing.T) {
	f := &fakeFetcher{err: errors.New("boom")}
	c := NewThumbnails(t.TempDir(), f, true)

	_, err := c.GetOrFetch(context.Background(), model.KindMappack, 9)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}
