package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tmxb/tmx-browser/internal/favorites"
	"github.com/tmxb/tmx-browser/internal/model"
)

// FavoritesTab shows the persisted favorite maps and mappacks.
type FavoritesTab struct {
	ui *RootUI

	mapEntries  []favorites.Entry
	packEntries []favorites.Entry

	mapList  *widget.List
	packList *widget.List

	playBtn     *widget.Button
	downloadBtn *widget.Button
	infoBtn     *widget.Button
	openPackBtn *widget.Button
	removeBtn   *widget.Button

	selectedKind model.ItemKind
	selected     favorites.Entry
	hasSelection bool

	content *fyne.Container
}

// NewFavoritesTab creates the favorites tab
func NewFavoritesTab(ui *RootUI) *FavoritesTab {
	ft := &FavoritesTab{ui: ui}
	ft.setupUI()
	ft.Reload()
	return ft
}

// Container returns the tab's root container.
func (ft *FavoritesTab) Container() *fyne.Container {
	return ft.content
}

func (ft *FavoritesTab) setupUI() {
	ft.mapList = widget.NewList(
		func() int { return len(ft.mapEntries) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("favorite")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ft.mapEntries) {
				return
			}
			e := ft.mapEntries[id]
			obj.(*widget.Label).SetText(e.DisplayName(model.KindMap) + " by " + e.DisplayAuthor())
		},
	)
	ft.mapList.OnSelected = func(id widget.ListItemID) {
		if id >= len(ft.mapEntries) {
			return
		}
		ft.packList.UnselectAll()
		ft.selectEntry(model.KindMap, ft.mapEntries[id])
	}

	ft.packList = widget.NewList(
		func() int { return len(ft.packEntries) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("favorite")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ft.packEntries) {
				return
			}
			e := ft.packEntries[id]
			obj.(*widget.Label).SetText(e.DisplayName(model.KindMappack) + " by " + e.DisplayAuthor())
		},
	)
	ft.packList.OnSelected = func(id widget.ListItemID) {
		if id >= len(ft.packEntries) {
			return
		}
		ft.mapList.UnselectAll()
		ft.selectEntry(model.KindMappack, ft.packEntries[id])
	}

	ft.playBtn = widget.NewButton(IconPlay+" Play", ft.onPlay)
	ft.playBtn.Importance = widget.HighImportance
	ft.downloadBtn = widget.NewButton(IconDownload+" Download", ft.onDownload)
	ft.infoBtn = widget.NewButton("Info", ft.onInfo)
	ft.openPackBtn = widget.NewButton(IconFolder+" Show maps", ft.onOpenPack)
	ft.removeBtn = widget.NewButton(IconRemove+" Remove", ft.onRemove)
	ft.hideButtons()

	buttons := container.NewHBox(ft.playBtn, ft.downloadBtn, ft.infoBtn, ft.openPackBtn, ft.removeBtn)

	lists := container.NewGridWithColumns(2,
		container.NewBorder(widget.NewLabel("Maps"), nil, nil, nil, ft.mapList),
		container.NewBorder(widget.NewLabel("Mappacks"), nil, nil, nil, ft.packList),
	)

	ft.content = container.NewBorder(
		nil,     // top
		buttons, // bottom
		nil, nil,
		lists, // center
	)
}

// Reload re-reads both favorite lists from the store.
func (ft *FavoritesTab) Reload() {
	ft.mapEntries = ft.ui.favStore.Maps()
	ft.packEntries = ft.ui.favStore.Mappacks()
	ft.hasSelection = false
	ft.hideButtons()
	ft.mapList.UnselectAll()
	ft.packList.UnselectAll()
	ft.mapList.Refresh()
	ft.packList.Refresh()
}

func (ft *FavoritesTab) selectEntry(kind model.ItemKind, e favorites.Entry) {
	ft.selectedKind = kind
	ft.selected = e
	ft.hasSelection = true

	ft.hideButtons()
	ft.removeBtn.Show()
	if kind == model.KindMap {
		ft.playBtn.Show()
		ft.downloadBtn.Show()
		ft.infoBtn.Show()
	} else {
		ft.openPackBtn.Show()
	}
}

func (ft *FavoritesTab) hideButtons() {
	ft.playBtn.Hide()
	ft.downloadBtn.Hide()
	ft.infoBtn.Hide()
	ft.openPackBtn.Hide()
	ft.removeBtn.Hide()
}

func (ft *FavoritesTab) onPlay() {
	if ft.hasSelection && ft.selectedKind == model.KindMap {
		ft.ui.playMap(ft.selected.ID, ft.selected.DisplayName(model.KindMap))
	}
}

func (ft *FavoritesTab) onDownload() {
	if ft.hasSelection && ft.selectedKind == model.KindMap {
		ft.ui.downloadMap(ft.selected.ID, ft.selected.DisplayName(model.KindMap))
	}
}

func (ft *FavoritesTab) onInfo() {
	if ft.hasSelection && ft.selectedKind == model.KindMap {
		ft.ui.browseSvc.FetchMapInfo(ft.selected.ID)
		ft.ui.setStatus("Loading map info...")
	}
}

func (ft *FavoritesTab) onOpenPack() {
	if ft.hasSelection && ft.selectedKind == model.KindMappack {
		ft.ui.browseSvc.ShowMappackMaps(ft.selected.ID)
		ft.ui.tabs.SelectIndex(0)
		ft.ui.setStatus("Loading maps from " + ft.selected.DisplayName(model.KindMappack) + "...")
	}
}

func (ft *FavoritesTab) onRemove() {
	if !ft.hasSelection {
		return
	}
	ft.ui.removeFavorite(ft.selectedKind, ft.selected.ID, ft.selected.DisplayName(ft.selectedKind))
}
