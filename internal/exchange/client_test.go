package exchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmxb/tmx-browser/internal/exchange"
	"github.com/tmxb/tmx-browser/internal/model"
)

const searchResponse = `{
  "Results": [
    {"MapId": 42, "Name": "Test Track", "Length": 45000, "Environment": 1},
    {"MapId": 43, "Name": "Other", "Uploader": {"UserId": 2, "Name": "alice"}}
  ]
}`

func newClient(t *testing.T, handler http.Handler) *exchange.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return exchange.NewClient(exchange.ClientConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func TestSearchMaps(t *testing.T) {
	var gotQuery map[string][]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/maps", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(searchResponse))
	}))

	maps, err := c.SearchMaps(context.Background(), exchange.SearchFilters{Name: "test", Count: 25})
	require.NoError(t, err)
	require.Len(t, maps, 2)

	assert.Equal(t, 42, maps[0].ID)
	assert.Equal(t, "Snow", maps[0].Environment.String())
	assert.Equal(t, "30-60 sec", maps[0].LengthBucket().String())
	assert.Equal(t, "alice", maps[1].UploaderName)

	assert.Equal(t, []string{"test"}, gotQuery["name"])
	assert.Equal(t, []string{"25"}, gotQuery["count"])
	assert.NotEmpty(t, gotQuery["fields"])
}

func TestSearchMapsEmptyEnvelope(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Results":[]}`))
	}))

	maps, err := c.SearchMaps(context.Background(), exchange.SearchFilters{Count: 25})
	require.NoError(t, err)
	assert.Empty(t, maps)
}

func TestSearchMapsServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.SearchMaps(context.Background(), exchange.SearchFilters{Count: 25})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestMapInfo(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "42", r.URL.Query().Get("id"))
		w.Write([]byte(`{"Results":[{"MapId":42,"Name":"Test Track"}]}`))
	}))

	rec, err := c.MapInfo(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Test Track", rec.Name)
}

func TestMapInfoNotFound(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Results":[]}`))
	}))

	_, err := c.MapInfo(context.Background(), 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSearchMappacks(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/mappacks", r.URL.Path)
		require.Equal(t, "winter", r.URL.Query().Get("name"))
		w.Write([]byte(`{"Results":[{"MappackId":55,"Name":"Winter","Owner":{"Name":"bob"},"TrackCount":12}]}`))
	}))

	packs, err := c.SearchMappacks(context.Background(), "winter")
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, "bob", packs[0].OwnerName)
}

func TestOfficialMappacks(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Ubisoft Nadeo", r.URL.Query().Get("manager"))
		w.Write([]byte(`{"Results":[]}`))
	}))

	packs, err := c.OfficialMappacks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, packs)
}

func TestDownloadMap(t *testing.T) {
	payload := make([]byte, 40000)
	for i := range payload {
		payload[i] = byte(i)
	}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps/download/42", r.URL.Path)
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Write(payload)
	}))

	dest := filepath.Join(t.TempDir(), "42.Map.Gbx")
	var lastPercent int
	err := c.DownloadMap(context.Background(), 42, dest, func(p int) { lastPercent = p })
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, 100, lastPercent)
}

func TestDownloadMapServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	dest := filepath.Join(t.TempDir(), "1.Map.Gbx")
	err := c.DownloadMap(context.Background(), 1, dest, nil)
	require.Error(t, err)
}

func TestFetchThumbnailPaths(t *testing.T) {
	var paths []string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("jpegbytes"))
	}))

	ctx := context.Background()
	data, err := c.FetchThumbnail(ctx, model.KindMap, 42)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpegbytes"), data)

	_, err = c.FetchThumbnail(ctx, model.KindMappack, 55)
	require.NoError(t, err)

	assert.Equal(t, []string{"/mapthumb/42", "/mappackthumb/55"}, paths)
}
