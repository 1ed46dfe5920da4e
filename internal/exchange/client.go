package exchange

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/tmxb/tmx-browser/internal/model"
)

// DefaultBaseURL points at the public exchange site.
const DefaultBaseURL = "https://trackmania.exchange"

// downloadTimeout bounds binary map downloads; metadata calls use the
// configured (shorter) timeout.
const downloadTimeout = 30 * time.Second

// downloadChunkSize is the copy buffer for streaming downloads.
const downloadChunkSize = 8192

// ClientConfig carries the remote API settings read once at startup.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate checks, mirroring the
	// verify_ssl=false configuration escape hatch.
	InsecureSkipVerify bool
}

// Client is the exchange REST client. One blocking request per call, no
// retries; failures come back as a single descriptive error.
type Client struct {
	baseURL string
	http    *http.Client
	dlHTTP  *http.Client
}

// NewClient creates a client from the given configuration.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	var transport http.RoundTripper
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout, Transport: transport},
		dlHTTP:  &http.Client{Timeout: downloadTimeout, Transport: transport},
	}
}

// doJSON issues one GET and decodes the JSON body into out.
func (c *Client) doJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s returned %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// SearchMaps runs a filtered map search.
func (c *Client) SearchMaps(ctx context.Context, filters SearchFilters) ([]*model.MapRecord, error) {
	return c.fetchMaps(ctx, filters.Values())
}

// MapInfo fetches a single map by id.
func (c *Client) MapInfo(ctx context.Context, mapID int) (*model.MapRecord, error) {
	maps, err := c.fetchMaps(ctx, mapInfoValues(mapID))
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, fmt.Errorf("map %d not found", mapID)
	}
	return maps[0], nil
}

// MappackMaps lists the maps contained in a mappack.
func (c *Client) MappackMaps(ctx context.Context, mappackID int) ([]*model.MapRecord, error) {
	return c.fetchMaps(ctx, mappackMapsValues(mappackID))
}

func (c *Client) fetchMaps(ctx context.Context, query url.Values) ([]*model.MapRecord, error) {
	var env envelope[wireMap]
	if err := c.doJSON(ctx, "/api/maps", query, &env); err != nil {
		return nil, err
	}
	maps := make([]*model.MapRecord, 0, len(env.Results))
	for _, w := range env.Results {
		maps = append(maps, w.toRecord())
	}
	return maps, nil
}

// SearchMappacks runs a free-text mappack search.
func (c *Client) SearchMappacks(ctx context.Context, query string) ([]*model.MappackRecord, error) {
	return c.fetchMappacks(ctx, mappackSearchValues(query))
}

// OfficialMappacks lists the packs published by the official manager account.
func (c *Client) OfficialMappacks(ctx context.Context) ([]*model.MappackRecord, error) {
	return c.fetchMappacks(ctx, officialPacksValues())
}

func (c *Client) fetchMappacks(ctx context.Context, query url.Values) ([]*model.MappackRecord, error) {
	var env envelope[wireMappack]
	if err := c.doJSON(ctx, "/api/mappacks", query, &env); err != nil {
		return nil, err
	}
	packs := make([]*model.MappackRecord, 0, len(env.Results))
	for _, w := range env.Results {
		packs = append(packs, w.toRecord())
	}
	return packs, nil
}

// DownloadMap streams the binary map file for mapID into dest, reporting
// whole-percent progress when the response carries a Content-Length.
func (c *Client) DownloadMap(ctx context.Context, mapID int, dest string, onProgress func(percent int)) error {
	u := fmt.Sprintf("%s/maps/download/%d", c.baseURL, mapID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.dlHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("download map %d: %w", mapID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("download map %d returned %d", mapID, resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()

	total := resp.ContentLength
	var written int64
	buf := make([]byte, downloadChunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := f.Write(buf[:n]); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			written += int64(n)
			if total > 0 && onProgress != nil {
				onProgress(int(written * 100 / total))
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("download map %d: %w", mapID, readErr)
		}
	}

	log.Printf("[DOWNLOAD] complete: %s", dest)
	return nil
}

// FetchThumbnail returns the raw thumbnail bytes for a map or mappack.
func (c *Client) FetchThumbnail(ctx context.Context, kind model.ItemKind, id int) ([]byte, error) {
	path := "/mapthumb/"
	if kind == model.KindMappack {
		path = "/mappackthumb/"
	}
	u := c.baseURL + path + strconv.Itoa(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s thumbnail %d: %w", kind, id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("thumbnail %s/%d returned %d", kind, id, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
