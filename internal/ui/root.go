package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tmxb/tmx-browser/internal/browse"
	"github.com/tmxb/tmx-browser/internal/cache"
	"github.com/tmxb/tmx-browser/internal/config"
	"github.com/tmxb/tmx-browser/internal/download"
	"github.com/tmxb/tmx-browser/internal/favorites"
	"github.com/tmxb/tmx-browser/internal/launcher"
	"github.com/tmxb/tmx-browser/internal/model"
	"github.com/tmxb/tmx-browser/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	browseSvc    *browse.Service
	downloadSvc  download.Downloader
	favStore     *favorites.Store
	thumbs       *cache.Thumbnails
	gameLauncher *launcher.Launcher

	tabs         *container.AppTabs
	browseTab    *BrowseTab
	favoritesTab *FavoritesTab
	settingsTab  *SettingsTab

	statusLabel *widget.Label
	statusTimer *time.Timer

	hidden bool

	// Maps queued to launch once their download completes. Only touched on
	// the Fyne thread.
	pendingLaunch map[int]bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	settings *config.Settings,
	browseSvc *browse.Service,
	downloadSvc download.Downloader,
	favStore *favorites.Store,
	thumbs *cache.Thumbnails,
	gameLauncher *launcher.Launcher,
) *RootUI {
	ui := &RootUI{
		window:        window,
		settings:      settings,
		browseSvc:     browseSvc,
		downloadSvc:   downloadSvc,
		favStore:      favStore,
		thumbs:        thumbs,
		gameLauncher:  gameLauncher,
		pendingLaunch: make(map[int]bool),
	}

	window.SetTitle("TMX Browser")

	// Completion callbacks arrive on worker goroutines; hop onto the Fyne
	// thread before touching widgets.
	ui.browseSvc.SetCallbacks(browse.Callbacks{
		OnMaps: func(maps []*model.MapRecord) {
			fyne.Do(func() {
				ui.browseTab.ShowMaps(maps)
				ui.setStatus(fmt.Sprintf("%d maps", len(maps)))
			})
		},
		OnMappacks: func(packs []*model.MappackRecord) {
			fyne.Do(func() {
				ui.browseTab.ShowMappacks(packs)
				ui.setStatus(fmt.Sprintf("%d mappacks", len(packs)))
			})
		},
		OnMapInfo: func(rec *model.MapRecord) {
			fyne.Do(func() {
				ui.browseTab.ShowMapInfo(rec)
				ui.tabs.SelectIndex(0)
			})
		},
		OnError: func(op string, err error) {
			fyne.Do(func() {
				ui.setStatus(op + " failed: " + err.Error())
			})
		},
	})

	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.browseTab = NewBrowseTab(ui)
	ui.favoritesTab = NewFavoritesTab(ui)
	ui.settingsTab = NewSettingsTab(ui)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem("Browse", ui.browseTab.Container()),
		container.NewTabItem("Favorites "+IconStar, ui.favoritesTab.Container()),
		container.NewTabItem("Settings "+IconSettings, ui.settingsTab.Container()),
	)
	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item.Content == ui.favoritesTab.Container() {
			ui.favoritesTab.Reload()
		}
	}

	content := container.NewBorder(
		nil,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.tabs,        // center
	)
	ui.window.SetContent(content)

	width, height := ui.settings.GetWindowSize()
	ui.window.Resize(fyne.NewSize(float32(width), float32(height)))

	// Remember the window size across sessions.
	ui.window.SetCloseIntercept(func() {
		size := ui.window.Canvas().Size()
		ui.settings.SetWindowSize(int(size.Width), int(size.Height))
		ui.window.Close()
	})

	hotkey := fyne.KeyName(ui.settings.GetToggleHotkey())
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == hotkey {
			ui.toggleVisibility()
		}
	})

	log.Printf("UI setup completed successfully")
}

// HideOverlay hides the window until the toggle hotkey shows it again. Safe
// to call from lifecycle hooks off the Fyne thread.
func (ui *RootUI) HideOverlay() {
	fyne.Do(func() {
		if !ui.hidden {
			ui.toggleVisibility()
		}
	})
}

// toggleVisibility hides or shows the overlay window.
func (ui *RootUI) toggleVisibility() {
	if ui.hidden {
		ui.window.Show()
	} else {
		ui.window.Hide()
	}
	ui.hidden = !ui.hidden
}

// setStatus shows a message in the status bar and clears it after a delay.
// Must be called on the Fyne thread.
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	ui.statusTimer = time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() {
			ui.statusLabel.SetText("")
		})
	})
}

// onTaskUpdate handles download task status changes
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	fyne.Do(func() {
		switch task.Status {
		case model.TaskStatusDownloading:
			ui.setStatus(fmt.Sprintf("Downloading %s: %d%%", task.MapName, task.Percent))
		case model.TaskStatusCompleted:
			ui.setStatus("Downloaded " + task.MapName)
			if ui.pendingLaunch[task.MapID] {
				delete(ui.pendingLaunch, task.MapID)
				ui.launchMapFile(task.OutputPath, task.MapName)
			}
		case model.TaskStatusError:
			delete(ui.pendingLaunch, task.MapID)
			ui.setStatus("Download failed: " + task.LastError)
		}
	})
}

// downloadMap queues a map download.
func (ui *RootUI) downloadMap(mapID int, name string) {
	if _, err := ui.downloadSvc.AddTask(mapID, name); err != nil {
		ui.setStatus("Download not started: " + err.Error())
		return
	}
	ui.setStatus("Download started: " + name)
}

// playMap launches a map, downloading it first when it is not on disk yet.
func (ui *RootUI) playMap(mapID int, name string) {
	path := ui.downloadSvc.MapFilePath(mapID)
	if platform.FileExists(path) {
		ui.launchMapFile(path, name)
		return
	}
	ui.pendingLaunch[mapID] = true
	ui.downloadMap(mapID, name)
}

func (ui *RootUI) launchMapFile(path, name string) {
	if err := ui.gameLauncher.Launch(path); err != nil {
		ui.setStatus("Launch failed: " + err.Error())
		return
	}
	ui.setStatus("Launching " + name)
}

// favoriteMap adds a map to the favorites file.
func (ui *RootUI) favoriteMap(rec *model.MapRecord) {
	err := ui.favStore.AddMap(favorites.Entry{
		ID:     rec.ID,
		Name:   rec.Name,
		Author: rec.UploaderName,
	})
	ui.finishFavorite(rec.Name, err)
}

// favoriteMappack adds a mappack to the favorites file.
func (ui *RootUI) favoriteMappack(rec *model.MappackRecord) {
	err := ui.favStore.AddMappack(favorites.Entry{
		ID:       rec.ID,
		Name:     rec.Name,
		Author:   rec.OwnerName,
		MapCount: rec.MapCount,
	})
	ui.finishFavorite(rec.Name, err)
}

func (ui *RootUI) finishFavorite(name string, err error) {
	if errors.Is(err, favorites.ErrAlreadyFavorite) {
		ui.setStatus(name + " is already a favorite")
		return
	}
	if err != nil {
		ui.setStatus("Saving favorites failed: " + err.Error())
		return
	}
	ui.favoritesTab.Reload()
	ui.setStatus("Added to favorites: " + name)
}

// removeFavorite removes an entry from the favorites file.
func (ui *RootUI) removeFavorite(kind model.ItemKind, id int, name string) {
	if err := ui.favStore.Remove(kind, id); err != nil {
		ui.setStatus("Removing favorite failed: " + err.Error())
		return
	}
	ui.favoritesTab.Reload()
	ui.setStatus("Removed from favorites: " + name)
}
