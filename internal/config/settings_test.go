package config

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestGameExecutable(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No default: the user must pick the executable themselves.
	if exe := settings.GetGameExecutable(); exe != "" {
		t.Errorf("Expected empty game executable by default, got %s", exe)
	}

	settings.SetGameExecutable("/games/TmForever.exe")
	if exe := settings.GetGameExecutable(); exe != "/games/TmForever.exe" {
		t.Errorf("Expected /games/TmForever.exe, got %s", exe)
	}
}

func TestDataDirectories(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	mapsDir := settings.GetMapsDirectory()
	if mapsDir == "" {
		t.Error("Maps directory should not be empty")
	}
	cacheDir := settings.GetCacheDirectory()
	if cacheDir == "" {
		t.Error("Cache directory should not be empty")
	}
	if mapsDir == cacheDir {
		t.Error("Maps and cache directories should differ")
	}

	settings.SetMapsDirectory("/custom/maps")
	if dir := settings.GetMapsDirectory(); dir != "/custom/maps" {
		t.Errorf("Expected maps directory /custom/maps, got %s", dir)
	}
}

func TestFavoritesFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	path := settings.GetFavoritesFile()
	if !strings.HasSuffix(path, "favorites.json") {
		t.Errorf("Expected default favorites file to end in favorites.json, got %s", path)
	}

	settings.SetFavoritesFile("/custom/favs.json")
	if path := settings.GetFavoritesFile(); path != "/custom/favs.json" {
		t.Errorf("Expected /custom/favs.json, got %s", path)
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if url := settings.GetAPIBaseURL(); url != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, url)
	}

	settings.SetAPIBaseURL("https://mirror.example")
	if url := settings.GetAPIBaseURL(); url != "https://mirror.example" {
		t.Errorf("Expected https://mirror.example, got %s", url)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if v := settings.GetRequestTimeout(); v != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %d, got %d", DefaultRequestTimeout, v)
	}

	settings.SetRequestTimeout(0) // Should be clamped to 1
	if v := settings.GetRequestTimeout(); v != 1 {
		t.Errorf("Expected timeout clamped to 1, got %d", v)
	}
}

func TestMapsPerPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if v := settings.GetMapsPerPage(); v != DefaultMapsPerPage {
		t.Errorf("Expected default maps per page %d, got %d", DefaultMapsPerPage, v)
	}

	settings.SetMapsPerPage(50)
	if v := settings.GetMapsPerPage(); v != 50 {
		t.Errorf("Expected maps per page 50, got %d", v)
	}

	// Test boundary values
	settings.SetMapsPerPage(5) // Should be clamped to 10
	if settings.GetMapsPerPage() != MinMapsPerPage {
		t.Error("Maps per page should be clamped to minimum 10")
	}

	settings.SetMapsPerPage(500) // Should be clamped to 100
	if settings.GetMapsPerPage() != MaxMapsPerPage {
		t.Error("Maps per page should be clamped to maximum 100")
	}
}

func TestBooleanSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetVerifySSL() {
		t.Error("SSL verification should default to true")
	}
	settings.SetVerifySSL(false)
	if settings.GetVerifySSL() {
		t.Error("Expected SSL verification off after SetVerifySSL(false)")
	}

	if !settings.GetAutoCacheThumbnails() {
		t.Error("Thumbnail auto-caching should default to true")
	}
	if settings.GetLaunchHidden() {
		t.Error("Start hidden should default to false")
	}
}

func TestToggleHotkey(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if key := settings.GetToggleHotkey(); key != DefaultToggleHotkey {
		t.Errorf("Expected default hotkey %s, got %s", DefaultToggleHotkey, key)
	}

	settings.SetToggleHotkey("F8")
	if key := settings.GetToggleHotkey(); key != "F8" {
		t.Errorf("Expected hotkey F8, got %s", key)
	}

	settings.SetToggleHotkey("")
	if key := settings.GetToggleHotkey(); key != DefaultToggleHotkey {
		t.Errorf("Empty hotkey should fall back to %s, got %s", DefaultToggleHotkey, key)
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	w, h := settings.GetWindowSize()
	if w != DefaultWindowWidth || h != DefaultWindowHeight {
		t.Errorf("Expected default window size %dx%d, got %dx%d",
			DefaultWindowWidth, DefaultWindowHeight, w, h)
	}

	settings.SetWindowSize(1200, 800)
	w, h = settings.GetWindowSize()
	if w != 1200 || h != 800 {
		t.Errorf("Expected window size 1200x800, got %dx%d", w, h)
	}
}
