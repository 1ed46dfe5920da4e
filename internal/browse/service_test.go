package browse

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tmxb/tmx-browser/internal/exchange"
	"github.com/tmxb/tmx-browser/internal/model"
)

// fakeCatalog serves canned results; individual calls can be overridden to
// block or vary per request.
type fakeCatalog struct {
	maps  []*model.MapRecord
	packs []*model.MappackRecord
	err   error

	searchFn func(filters exchange.SearchFilters) ([]*model.MapRecord, error)
	packsFn  func(mappackID int) ([]*model.MapRecord, error)
}

func (f *fakeCatalog) SearchMaps(_ context.Context, filters exchange.SearchFilters) ([]*model.MapRecord, error) {
	if f.searchFn != nil {
		return f.searchFn(filters)
	}
	return f.maps, f.err
}

func (f *fakeCatalog) MapInfo(context.Context, int) (*model.MapRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.maps[0], nil
}

func (f *fakeCatalog) MappackMaps(_ context.Context, mappackID int) ([]*model.MapRecord, error) {
	if f.packsFn != nil {
		return f.packsFn(mappackID)
	}
	return f.maps, f.err
}

func (f *fakeCatalog) SearchMappacks(context.Context, string) ([]*model.MappackRecord, error) {
	return f.packs, f.err
}

func (f *fakeCatalog) OfficialMappacks(context.Context) ([]*model.MappackRecord, error) {
	return f.packs, f.err
}

func TestSearchMapsDeliversResults(t *testing.T) {
	cat := &fakeCatalog{maps: []*model.MapRecord{{ID: 42, Name: "Test Track"}}}
	svc := NewService(cat)

	got := make(chan []*model.MapRecord, 1)
	svc.SetCallbacks(Callbacks{
		OnMaps: func(maps []*model.MapRecord) { got <- maps },
		OnError: func(op string, err error) {
			t.Errorf("unexpected error for %s: %v", op, err)
		},
	})

	svc.SearchMaps(exchange.SearchFilters{Count: 25})

	select {
	case maps := <-got:
		if len(maps) != 1 || maps[0].ID != 42 {
			t.Errorf("unexpected maps: %+v", maps)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search callback")
	}
}

func TestErrorsReachErrorCallback(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("connection refused")}
	svc := NewService(cat)

	got := make(chan error, 1)
	svc.SetCallbacks(Callbacks{
		OnMaps:  func([]*model.MapRecord) { t.Error("OnMaps must not fire on failure") },
		OnError: func(_ string, err error) { got <- err },
	})

	svc.SearchMaps(exchange.SearchFilters{Count: 25})

	select {
	case err := <-got:
		if err == nil {
			t.Error("expected an error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error callback")
	}
}

func TestStaleSearchResultDiscarded(t *testing.T) {
	// The first search blocks until released; a second search completes
	// meanwhile. When the first one finally returns, its token is stale and
	// its results must not reach the UI.
	release := make(chan struct{})
	cat := &fakeCatalog{}
	cat.searchFn = func(filters exchange.SearchFilters) ([]*model.MapRecord, error) {
		if filters.Name == "old" {
			<-release
			return []*model.MapRecord{{ID: 1, Name: "stale"}}, nil
		}
		return []*model.MapRecord{{ID: 2, Name: "fresh"}}, nil
	}
	svc := NewService(cat)

	var mu sync.Mutex
	var delivered []string
	done := make(chan struct{}, 2)
	svc.SetCallbacks(Callbacks{
		OnMaps: func(maps []*model.MapRecord) {
			mu.Lock()
			delivered = append(delivered, maps[0].Name)
			mu.Unlock()
			done <- struct{}{}
		},
	})

	svc.SearchMaps(exchange.SearchFilters{Name: "old", Count: 25})
	svc.SearchMaps(exchange.SearchFilters{Name: "new", Count: 25})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fresh results")
	}

	// Release the slow fetch; its delivery must be dropped.
	close(release)
	select {
	case <-done:
		t.Fatal("stale result was delivered")
	case <-time.After(200 * time.Millisecond):
	}

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 || delivered[0] != "fresh" {
		t.Errorf("unexpected deliveries: %v", delivered)
	}
}

func TestMappackMapsSharesMapListTokens(t *testing.T) {
	// A slow mappack listing superseded by a map search must be dropped:
	// both feed the same list.
	release := make(chan struct{})
	cat := &fakeCatalog{maps: []*model.MapRecord{{ID: 2, Name: "searched"}}}
	cat.packsFn = func(int) ([]*model.MapRecord, error) {
		<-release
		return []*model.MapRecord{{ID: 1, Name: "pack map"}}, nil
	}
	svc := NewService(cat)

	done := make(chan string, 2)
	svc.SetCallbacks(Callbacks{
		OnMaps: func(maps []*model.MapRecord) { done <- maps[0].Name },
	})

	svc.ShowMappackMaps(55)
	svc.SearchMaps(exchange.SearchFilters{Count: 25})

	select {
	case name := <-done:
		if name != "searched" {
			t.Errorf("first delivery = %q, want %q", name, "searched")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}

	close(release)
	select {
	case name := <-done:
		t.Fatalf("stale mappack listing delivered: %q", name)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFetchMapInfo(t *testing.T) {
	cat := &fakeCatalog{maps: []*model.MapRecord{{ID: 42, Name: "Test Track"}}}
	svc := NewService(cat)

	got := make(chan *model.MapRecord, 1)
	svc.SetCallbacks(Callbacks{
		OnMapInfo: func(rec *model.MapRecord) { got <- rec },
	})

	svc.FetchMapInfo(42)

	select {
	case rec := <-got:
		if rec.ID != 42 {
			t.Errorf("unexpected record: %+v", rec)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for map info")
	}
}
