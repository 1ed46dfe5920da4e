package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/tmxb/tmx-browser/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyGameExecutable      = "game_executable"
	KeyMapsDir             = "maps_directory"
	KeyCacheDir            = "cache_directory"
	KeyFavoritesFile       = "favorites_file"
	KeyAPIBaseURL          = "api_base_url"
	KeyRequestTimeout      = "request_timeout_seconds"
	KeyVerifySSL           = "verify_ssl"
	KeyMapsPerPage         = "maps_per_page"
	KeyAutoCacheThumbnails = "auto_cache_thumbnails"
	KeyLaunchHidden        = "start_hidden"
	KeyToggleHotkey        = "toggle_hotkey"
	KeyWindowWidth         = "window_width"
	KeyWindowHeight        = "window_height"
)

// Default values
const (
	DefaultAPIBaseURL          = "https://trackmania.exchange"
	DefaultRequestTimeout      = 10
	DefaultVerifySSL           = true
	DefaultMapsPerPage         = 25
	DefaultAutoCacheThumbnails = true
	DefaultLaunchHidden        = false
	DefaultToggleHotkey        = "F9"
	DefaultWindowWidth         = 900
	DefaultWindowHeight        = 700
)

// Results-per-page bounds accepted by the exchange API.
const (
	MinMapsPerPage = 10
	MaxMapsPerPage = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetGameExecutable returns the configured game executable path, empty when
// the user has not picked one yet.
func (s *Settings) GetGameExecutable() string {
	return s.app.Preferences().String(KeyGameExecutable)
}

// SetGameExecutable sets the game executable path
func (s *Settings) SetGameExecutable(path string) {
	s.app.Preferences().SetString(KeyGameExecutable, path)
}

// GetMapsDirectory returns the directory downloaded maps are saved to
func (s *Settings) GetMapsDirectory() string {
	dir := s.app.Preferences().String(KeyMapsDir)
	if dir == "" {
		dir = filepath.Join(platform.DefaultDataDir(), "maps")
		s.SetMapsDirectory(dir)
	}
	return dir
}

// SetMapsDirectory sets the maps download directory
func (s *Settings) SetMapsDirectory(dir string) {
	s.app.Preferences().SetString(KeyMapsDir, dir)
}

// GetCacheDirectory returns the thumbnail cache directory
func (s *Settings) GetCacheDirectory() string {
	dir := s.app.Preferences().String(KeyCacheDir)
	if dir == "" {
		dir = filepath.Join(platform.DefaultDataDir(), "thumbcache")
		s.SetCacheDirectory(dir)
	}
	return dir
}

// SetCacheDirectory sets the thumbnail cache directory
func (s *Settings) SetCacheDirectory(dir string) {
	s.app.Preferences().SetString(KeyCacheDir, dir)
}

// GetFavoritesFile returns the path of the favorites JSON file
func (s *Settings) GetFavoritesFile() string {
	path := s.app.Preferences().String(KeyFavoritesFile)
	if path == "" {
		path = filepath.Join(platform.DefaultDataDir(), "favorites.json")
		s.SetFavoritesFile(path)
	}
	return path
}

// SetFavoritesFile sets the path of the favorites JSON file
func (s *Settings) SetFavoritesFile(path string) {
	s.app.Preferences().SetString(KeyFavoritesFile, path)
}

// GetAPIBaseURL returns the exchange base URL
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the exchange base URL
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetRequestTimeout returns the metadata request timeout in seconds
func (s *Settings) GetRequestTimeout() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeout sets the metadata request timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetVerifySSL returns whether TLS certificates are verified
func (s *Settings) GetVerifySSL() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerifySSL, DefaultVerifySSL)
}

// SetVerifySSL sets whether TLS certificates are verified
func (s *Settings) SetVerifySSL(verify bool) {
	s.app.Preferences().SetBool(KeyVerifySSL, verify)
}

// GetMapsPerPage returns how many results a search requests
func (s *Settings) GetMapsPerPage() int {
	value := s.app.Preferences().Int(KeyMapsPerPage)
	if value == 0 {
		s.SetMapsPerPage(DefaultMapsPerPage)
		return DefaultMapsPerPage
	}
	return value
}

// SetMapsPerPage sets how many results a search requests, clamped to the
// range the exchange API accepts.
func (s *Settings) SetMapsPerPage(count int) {
	if count < MinMapsPerPage {
		count = MinMapsPerPage
	}
	if count > MaxMapsPerPage {
		count = MaxMapsPerPage
	}
	s.app.Preferences().SetInt(KeyMapsPerPage, count)
}

// GetAutoCacheThumbnails returns whether thumbnails are fetched on demand
func (s *Settings) GetAutoCacheThumbnails() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoCacheThumbnails, DefaultAutoCacheThumbnails)
}

// SetAutoCacheThumbnails sets whether thumbnails are fetched on demand
func (s *Settings) SetAutoCacheThumbnails(auto bool) {
	s.app.Preferences().SetBool(KeyAutoCacheThumbnails, auto)
}

// GetLaunchHidden returns whether the overlay starts hidden
func (s *Settings) GetLaunchHidden() bool {
	return s.app.Preferences().BoolWithFallback(KeyLaunchHidden, DefaultLaunchHidden)
}

// SetLaunchHidden sets whether the overlay starts hidden
func (s *Settings) SetLaunchHidden(hidden bool) {
	s.app.Preferences().SetBool(KeyLaunchHidden, hidden)
}

// GetToggleHotkey returns the label of the show/hide hotkey
func (s *Settings) GetToggleHotkey() string {
	key := s.app.Preferences().String(KeyToggleHotkey)
	if key == "" {
		s.SetToggleHotkey(DefaultToggleHotkey)
		return DefaultToggleHotkey
	}
	return key
}

// SetToggleHotkey sets the label of the show/hide hotkey
func (s *Settings) SetToggleHotkey(key string) {
	if key == "" {
		key = DefaultToggleHotkey
	}
	s.app.Preferences().SetString(KeyToggleHotkey, key)
}

// GetWindowSize returns the remembered overlay window size
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return width, height
}

// SetWindowSize remembers the overlay window size
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}
