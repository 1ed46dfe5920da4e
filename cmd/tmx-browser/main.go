package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/tmxb/tmx-browser/internal/browse"
	"github.com/tmxb/tmx-browser/internal/cache"
	"github.com/tmxb/tmx-browser/internal/config"
	"github.com/tmxb/tmx-browser/internal/download"
	"github.com/tmxb/tmx-browser/internal/exchange"
	"github.com/tmxb/tmx-browser/internal/favorites"
	"github.com/tmxb/tmx-browser/internal/launcher"
	"github.com/tmxb/tmx-browser/internal/platform"
	"github.com/tmxb/tmx-browser/internal/ui"
)

const maxParallelDownloads = 2

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.tmxb.tmx-browser")
	myApp.Settings().SetTheme(ui.NewOverlayTheme())
	myWindow := myApp.NewWindow("TMX Browser")

	settings := config.NewSettings(myApp)
	mapsDir := settings.GetMapsDirectory()
	if err := platform.CreateDirectoryIfNotExists(mapsDir); err != nil {
		fmt.Printf("failed to ensure maps dir: %v\n", err)
	}

	client := exchange.NewClient(exchange.ClientConfig{
		BaseURL:            settings.GetAPIBaseURL(),
		Timeout:            time.Duration(settings.GetRequestTimeout()) * time.Second,
		InsecureSkipVerify: !settings.GetVerifySSL(),
	})

	rootUI := ui.NewRootUI(
		myWindow,
		settings,
		browse.NewService(client),
		download.NewService(client, mapsDir, maxParallelDownloads),
		favorites.Load(settings.GetFavoritesFile()),
		cache.NewThumbnails(settings.GetCacheDirectory(), client, settings.GetAutoCacheThumbnails()),
		launcher.New(settings.GetGameExecutable()),
	)

	if settings.GetLaunchHidden() {
		myApp.Lifecycle().SetOnStarted(rootUI.HideOverlay)
	}

	// Show and run
	myWindow.ShowAndRun()
}
