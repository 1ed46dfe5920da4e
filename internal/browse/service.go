package browse

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/tmxb/tmx-browser/internal/exchange"
	"github.com/tmxb/tmx-browser/internal/model"
)

// Catalog is the slice of the exchange client the browse service needs.
type Catalog interface {
	SearchMaps(ctx context.Context, filters exchange.SearchFilters) ([]*model.MapRecord, error)
	MapInfo(ctx context.Context, mapID int) (*model.MapRecord, error)
	MappackMaps(ctx context.Context, mappackID int) ([]*model.MapRecord, error)
	SearchMappacks(ctx context.Context, query string) ([]*model.MappackRecord, error)
	OfficialMappacks(ctx context.Context) ([]*model.MappackRecord, error)
}

// destination identifies which UI slot a fetch feeds. Tokens are tracked per
// destination: a mappack-maps listing and a map search both replace the map
// list, so they share one token space.
type destination int

const (
	destMapList destination = iota
	destMappackList
	destMapInfo
	destinationCount
)

// Callbacks receive completed fetches. They are invoked from worker
// goroutines; the UI wires them through fyne.Do.
type Callbacks struct {
	OnMaps     func(maps []*model.MapRecord)
	OnMappacks func(packs []*model.MappackRecord)
	OnMapInfo  func(rec *model.MapRecord)
	OnError    func(op string, err error)
}

// Service owns the background fetch workers.
type Service struct {
	catalog   Catalog
	callbacks Callbacks
	latest    [destinationCount]atomic.Uint64
}

// NewService creates a browse service over the given catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// SetCallbacks wires the completion callbacks. Must be called before any
// fetch is started.
func (s *Service) SetCallbacks(cb Callbacks) {
	s.callbacks = cb
}

// SearchMaps starts a background map search. Any in-flight fetch feeding the
// map list is implicitly superseded.
func (s *Service) SearchMaps(filters exchange.SearchFilters) {
	token := s.latest[destMapList].Add(1)
	go func() {
		maps, err := s.catalog.SearchMaps(context.Background(), filters)
		s.deliverMaps("search", token, maps, err)
	}()
}

// ShowMappackMaps starts a background listing of the maps in a mappack,
// feeding the same list as a map search.
func (s *Service) ShowMappackMaps(mappackID int) {
	token := s.latest[destMapList].Add(1)
	go func() {
		maps, err := s.catalog.MappackMaps(context.Background(), mappackID)
		s.deliverMaps("mappack maps", token, maps, err)
	}()
}

// SearchMappacks starts a background free-text mappack search.
func (s *Service) SearchMappacks(query string) {
	token := s.latest[destMappackList].Add(1)
	go func() {
		packs, err := s.catalog.SearchMappacks(context.Background(), query)
		s.deliverMappacks("mappack search", token, packs, err)
	}()
}

// LoadOfficialPacks starts a background fetch of the official mappacks.
func (s *Service) LoadOfficialPacks() {
	token := s.latest[destMappackList].Add(1)
	go func() {
		packs, err := s.catalog.OfficialMappacks(context.Background())
		s.deliverMappacks("official packs", token, packs, err)
	}()
}

// FetchMapInfo starts a background single-map lookup.
func (s *Service) FetchMapInfo(mapID int) {
	token := s.latest[destMapInfo].Add(1)
	go func() {
		rec, err := s.catalog.MapInfo(context.Background(), mapID)
		if s.stale(destMapInfo, token, "map info") {
			return
		}
		if err != nil {
			s.fail("map info", err)
			return
		}
		if s.callbacks.OnMapInfo != nil {
			s.callbacks.OnMapInfo(rec)
		}
	}()
}

func (s *Service) deliverMaps(op string, token uint64, maps []*model.MapRecord, err error) {
	if s.stale(destMapList, token, op) {
		return
	}
	if err != nil {
		s.fail(op, err)
		return
	}
	if s.callbacks.OnMaps != nil {
		s.callbacks.OnMaps(maps)
	}
}

func (s *Service) deliverMappacks(op string, token uint64, packs []*model.MappackRecord, err error) {
	if s.stale(destMappackList, token, op) {
		return
	}
	if err != nil {
		s.fail(op, err)
		return
	}
	if s.callbacks.OnMappacks != nil {
		s.callbacks.OnMappacks(packs)
	}
}

// stale reports whether a newer fetch for the destination was issued after
// this one.
func (s *Service) stale(d destination, token uint64, op string) bool {
	if s.latest[d].Load() != token {
		log.Printf("[BROWSE] discarding stale %s result (token %d)", op, token)
		return true
	}
	return false
}

func (s *Service) fail(op string, err error) {
	log.Printf("[BROWSE] %s failed: %v", op, err)
	if s.callbacks.OnError != nil {
		s.callbacks.OnError(op, err)
	}
}
