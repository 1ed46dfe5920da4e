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

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tmxb.tmx-browser"
	AppName = "TMX Browser"

	MaxParallelDownloads = 2
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply dark overlay theme
	myApp.Settings().SetTheme(ui.NewOverlayTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize services
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

	browseSvc := browse.NewService(client)
	downloadSvc := download.NewService(client, mapsDir, MaxParallelDownloads)
	favStore := favorites.Load(settings.GetFavoritesFile())
	thumbs := cache.NewThumbnails(settings.GetCacheDirectory(), client, settings.GetAutoCacheThumbnails())
	gameLauncher := launcher.New(settings.GetGameExecutable())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, settings, browseSvc, downloadSvc, favStore, thumbs, gameLauncher)

	if settings.GetLaunchHidden() {
		myApp.Lifecycle().SetOnStarted(rootUI.HideOverlay)
	}

	// Show and run
	myWindow.ShowAndRun()
}
