package exchange

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tmxb/tmx-browser/internal/model"
)

// Result count bounds for map searches.
const (
	MinResultCount     = 10
	MaxResultCount     = 100
	mappackResultCount = 25
)

// officialPacksManager is the fixed owner filter behind the "official packs"
// listing.
const officialPacksManager = "Ubisoft Nadeo"

// mapFields is the projection requested for every map query.
var mapFields = []string{
	"MapId", "Name", "GbxMapName", "Uploader.UserId", "Uploader.Name",
	"Environment", "Difficulty", "Length", "Vehicle", "MapType",
	"CommentCount", "DownloadCount", "ReplayCount", "AwardCount",
	"UploadedAt", "UpdatedAt", "ActivityAt", "HasThumbnail",
	"HasImages", "TrackValue", "OnlineWR", "TitlePack",
	"Style", "Mood", "Routes", "Type", "Authors", "Tags",
}

// mappackFields is the projection requested for every mappack query.
var mappackFields = []string{
	"MappackId", "Name", "Owner.UserId", "Owner.Name", "Description", "DownloadCount",
}

// SearchFilters holds the optional map search criteria. Zero-valued fields
// contribute nothing to the outgoing query; free text is passed through
// verbatim for the remote service to interpret.
type SearchFilters struct {
	Name   string
	Author string

	Environment    model.Environment
	HasEnvironment bool

	Difficulty    model.Difficulty
	HasDifficulty bool

	Length    model.LengthBucket
	HasLength bool

	// SortName is a label from model.SortNames; unknown labels are ignored.
	SortName string

	// Count is clamped to [MinResultCount, MaxResultCount] and always sent.
	Count int
}

// Values maps the filters onto the query parameters of the map search
// endpoint, including the fixed field projection.
func (f SearchFilters) Values() url.Values {
	q := url.Values{}

	if name := strings.TrimSpace(f.Name); name != "" {
		q.Set("name", name)
	}
	if author := strings.TrimSpace(f.Author); author != "" {
		q.Set("author", author)
	}
	if ord, ok := model.SortOrdinal(f.SortName); ok {
		q.Set("order1", strconv.Itoa(ord))
	}
	if f.HasEnvironment {
		q.Set("environment", strconv.Itoa(int(f.Environment)))
	}
	if f.HasDifficulty {
		q.Set("difficulty", strconv.Itoa(int(f.Difficulty)))
	}
	if f.HasLength {
		min, max := f.Length.Bounds()
		q.Set("lengthmin", strconv.Itoa(min))
		q.Set("lengthmax", strconv.Itoa(max))
	}

	q.Set("count", strconv.Itoa(clampCount(f.Count)))
	q.Set("fields", strings.Join(mapFields, ","))
	return q
}

// mapInfoValues builds the query for a single-map lookup.
func mapInfoValues(mapID int) url.Values {
	q := url.Values{}
	q.Set("id", strconv.Itoa(mapID))
	q.Set("fields", strings.Join(mapFields, ","))
	return q
}

// mappackMapsValues builds the query listing all maps in a mappack.
func mappackMapsValues(mappackID int) url.Values {
	q := url.Values{}
	q.Set("mappackid", strconv.Itoa(mappackID))
	q.Set("count", strconv.Itoa(MaxResultCount))
	q.Set("fields", strings.Join(mapFields, ","))
	return q
}

// mappackSearchValues builds the free-text mappack search query: fixed page
// size, fixed recency sort.
func mappackSearchValues(query string) url.Values {
	q := url.Values{}
	q.Set("name", query)
	q.Set("count", strconv.Itoa(mappackResultCount))
	q.Set("order1", strconv.Itoa(model.SortOrdinalNewestUploaded))
	q.Set("fields", strings.Join(mappackFields, ","))
	return q
}

// officialPacksValues builds the "official packs" variant: a fixed owner
// filter substituted for free text.
func officialPacksValues() url.Values {
	q := url.Values{}
	q.Set("manager", officialPacksManager)
	q.Set("count", strconv.Itoa(MaxResultCount))
	q.Set("order1", strconv.Itoa(model.SortOrdinalNewestUploaded))
	q.Set("fields", strings.Join(mappackFields, ","))
	return q
}

func clampCount(n int) int {
	if n < MinResultCount {
		return MinResultCount
	}
	if n > MaxResultCount {
		return MaxResultCount
	}
	return n
}
