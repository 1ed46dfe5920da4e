package ui

import (
	"context"
	"strings"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tmxb/tmx-browser/internal/exchange"
	"github.com/tmxb/tmx-browser/internal/model"
)

// BrowseTab holds the search form, the result list and the detail panel.
type BrowseTab struct {
	ui *RootUI

	modeRadio   *widget.RadioGroup
	nameEntry   *widget.Entry
	authorEntry *widget.Entry
	envSelect   *widget.Select
	diffSelect  *widget.Select
	lenSelect   *widget.Select
	sortSelect  *widget.Select
	searchBtn   *widget.Button
	officialBtn *widget.Button

	items []model.ListItem
	list  *widget.List

	detailThumb *canvas.Image
	detailInfo  *widget.Label
	downloadBtn *widget.Button
	playBtn     *widget.Button
	favoriteBtn *widget.Button
	openPackBtn *widget.Button

	selected model.ListItem

	// Superseded thumbnail loads are dropped by token.
	thumbToken atomic.Uint64

	content *fyne.Container
}

// NewBrowseTab creates the browse tab
func NewBrowseTab(ui *RootUI) *BrowseTab {
	bt := &BrowseTab{ui: ui}
	bt.setupUI()
	return bt
}

// Container returns the tab's root container.
func (bt *BrowseTab) Container() *fyne.Container {
	return bt.content
}

func (bt *BrowseTab) setupUI() {
	bt.nameEntry = widget.NewEntry()
	bt.nameEntry.SetPlaceHolder("Map name")
	bt.nameEntry.OnSubmitted = func(string) { bt.onSearch() }

	bt.authorEntry = widget.NewEntry()
	bt.authorEntry.SetPlaceHolder("Author")
	bt.authorEntry.OnSubmitted = func(string) { bt.onSearch() }

	bt.envSelect = widget.NewSelect(withAnyOption(model.EnvironmentNames()), nil)
	bt.envSelect.SetSelected(AnyFilterOption)

	bt.diffSelect = widget.NewSelect(withAnyOption(model.DifficultyFilterNames()), nil)
	bt.diffSelect.SetSelected(AnyFilterOption)

	bt.lenSelect = widget.NewSelect(withAnyOption(model.LengthBucketNames()), nil)
	bt.lenSelect.SetSelected(AnyFilterOption)

	sortNames := model.SortNames()
	bt.sortSelect = widget.NewSelect(sortNames, nil)
	bt.sortSelect.SetSelected(sortNames[0])

	bt.searchBtn = widget.NewButton("Search", bt.onSearch)
	bt.searchBtn.Importance = widget.HighImportance
	bt.officialBtn = widget.NewButton("Official packs", bt.onOfficialPacks)

	bt.modeRadio = widget.NewRadioGroup([]string{ModeMaps, ModeMappacks}, bt.onModeChanged)
	bt.modeRadio.Horizontal = true
	bt.modeRadio.SetSelected(ModeMaps)

	filterForm := container.NewVBox(
		bt.modeRadio,
		bt.nameEntry,
		bt.authorEntry,
		container.NewGridWithColumns(2,
			widget.NewLabel("Environment"), bt.envSelect,
			widget.NewLabel("Difficulty"), bt.diffSelect,
			widget.NewLabel("Length"), bt.lenSelect,
			widget.NewLabel("Sort"), bt.sortSelect,
		),
		container.NewGridWithColumns(2, bt.searchBtn, bt.officialBtn),
	)

	bt.list = widget.NewList(
		func() int { return len(bt.items) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("result")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(bt.items) {
				return
			}
			obj.(*widget.Label).SetText(bt.items[id].Label())
		},
	)
	bt.list.OnSelected = bt.onItemSelected

	bt.detailThumb = &canvas.Image{FillMode: canvas.ImageFillContain}
	bt.detailThumb.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	bt.detailInfo = widget.NewLabel("Select a result to see details.")
	bt.detailInfo.Wrapping = fyne.TextWrapWord

	bt.downloadBtn = widget.NewButton(IconDownload+" Download", bt.onDownload)
	bt.playBtn = widget.NewButton(IconPlay+" Play", bt.onPlay)
	bt.playBtn.Importance = widget.HighImportance
	bt.favoriteBtn = widget.NewButton(IconStar+" Favorite", bt.onFavorite)
	bt.openPackBtn = widget.NewButton(IconFolder+" Show maps", bt.onOpenPack)
	bt.hideDetailButtons()

	detail := container.NewVBox(
		container.NewCenter(bt.detailThumb),
		bt.detailInfo,
		bt.playBtn,
		bt.downloadBtn,
		bt.openPackBtn,
		bt.favoriteBtn,
	)

	split := container.NewHSplit(bt.list, container.NewVScroll(detail))
	split.SetOffset(0.55)

	bt.content = container.NewBorder(
		filterForm, // top
		nil, nil, nil,
		split, // center
	)
}

// withAnyOption prepends the no-filter choice to a select's options.
func withAnyOption(names []string) []string {
	return append([]string{AnyFilterOption}, names...)
}

// onModeChanged enables the map-only filters for map searches and disables
// them for mappack searches, which only take free text.
func (bt *BrowseTab) onModeChanged(mode string) {
	mapOnly := []fyne.Disableable{bt.authorEntry, bt.envSelect, bt.diffSelect, bt.lenSelect, bt.sortSelect}
	for _, w := range mapOnly {
		if mode == ModeMappacks {
			w.Disable()
		} else {
			w.Enable()
		}
	}
}

// buildFilters maps the form onto search filters. "Any" selections are left
// absent so the corresponding query parameters are omitted.
func (bt *BrowseTab) buildFilters() exchange.SearchFilters {
	filters := exchange.SearchFilters{
		Name:     strings.TrimSpace(bt.nameEntry.Text),
		Author:   strings.TrimSpace(bt.authorEntry.Text),
		SortName: bt.sortSelect.Selected,
		Count:    bt.ui.settings.GetMapsPerPage(),
	}
	if env, ok := model.EnvironmentByName(bt.envSelect.Selected); ok {
		filters.Environment = env
		filters.HasEnvironment = true
	}
	if diff, ok := model.DifficultyByName(bt.diffSelect.Selected); ok {
		filters.Difficulty = diff
		filters.HasDifficulty = true
	}
	if bucket, ok := model.LengthBucketByName(bt.lenSelect.Selected); ok {
		filters.Length = bucket
		filters.HasLength = true
	}
	return filters
}

func (bt *BrowseTab) onSearch() {
	if bt.modeRadio.Selected == ModeMappacks {
		query := strings.TrimSpace(bt.nameEntry.Text)
		if query == "" {
			bt.ui.setStatus("Enter a mappack name")
			return
		}
		bt.ui.browseSvc.SearchMappacks(query)
		bt.ui.setStatus("Searching mappacks...")
		return
	}
	bt.ui.browseSvc.SearchMaps(bt.buildFilters())
	bt.ui.setStatus("Searching maps...")
}

func (bt *BrowseTab) onOfficialPacks() {
	bt.modeRadio.SetSelected(ModeMappacks)
	bt.ui.browseSvc.LoadOfficialPacks()
	bt.ui.setStatus("Loading official packs...")
}

// ShowMaps replaces the result list with map records.
func (bt *BrowseTab) ShowMaps(maps []*model.MapRecord) {
	bt.items = bt.items[:0]
	for _, m := range maps {
		bt.items = append(bt.items, m)
	}
	bt.resetList()
}

// ShowMappacks replaces the result list with mappack records.
func (bt *BrowseTab) ShowMappacks(packs []*model.MappackRecord) {
	bt.items = bt.items[:0]
	for _, p := range packs {
		bt.items = append(bt.items, p)
	}
	bt.resetList()
}

// ShowMapInfo shows a single map in the detail panel without touching the
// result list. Used when a favorite is looked up.
func (bt *BrowseTab) ShowMapInfo(rec *model.MapRecord) {
	bt.selected = rec
	bt.showDetail(rec)
}

func (bt *BrowseTab) resetList() {
	bt.list.UnselectAll()
	bt.list.Refresh()
	bt.list.ScrollToTop()
}

func (bt *BrowseTab) onItemSelected(id widget.ListItemID) {
	if id >= len(bt.items) {
		return
	}
	bt.selected = bt.items[id]
	bt.showDetail(bt.selected)
}

func (bt *BrowseTab) showDetail(item model.ListItem) {
	bt.detailInfo.SetText(item.InfoText())
	bt.hideDetailButtons()

	switch v := item.(type) {
	case *model.MapRecord:
		bt.playBtn.Show()
		bt.downloadBtn.Show()
		bt.favoriteBtn.Show()
		bt.loadThumbnail(model.KindMap, v.ID)
	case *model.MappackRecord:
		bt.openPackBtn.Show()
		bt.favoriteBtn.Show()
		bt.loadThumbnail(model.KindMappack, v.ID)
	}
}

func (bt *BrowseTab) hideDetailButtons() {
	bt.playBtn.Hide()
	bt.downloadBtn.Hide()
	bt.favoriteBtn.Hide()
	bt.openPackBtn.Hide()
}

// loadThumbnail fetches the thumbnail off the Fyne thread and applies it only
// if no newer selection happened meanwhile.
func (bt *BrowseTab) loadThumbnail(kind model.ItemKind, id int) {
	token := bt.thumbToken.Add(1)

	bt.detailThumb.File = ""
	bt.detailThumb.Resource = nil
	bt.detailThumb.Refresh()

	go func() {
		path, err := bt.ui.thumbs.GetOrFetch(context.Background(), kind, id)
		if err != nil {
			return // no thumbnail, panel stays blank
		}
		fyne.Do(func() {
			if bt.thumbToken.Load() != token {
				return
			}
			bt.detailThumb.File = path
			bt.detailThumb.Refresh()
		})
	}()
}

func (bt *BrowseTab) onDownload() {
	if rec, ok := bt.selected.(*model.MapRecord); ok {
		bt.ui.downloadMap(rec.ID, rec.Name)
	}
}

func (bt *BrowseTab) onPlay() {
	if rec, ok := bt.selected.(*model.MapRecord); ok {
		bt.ui.playMap(rec.ID, rec.Name)
	}
}

func (bt *BrowseTab) onFavorite() {
	switch v := bt.selected.(type) {
	case *model.MapRecord:
		bt.ui.favoriteMap(v)
	case *model.MappackRecord:
		bt.ui.favoriteMappack(v)
	}
}

func (bt *BrowseTab) onOpenPack() {
	rec, ok := bt.selected.(*model.MappackRecord)
	if !ok {
		return
	}
	bt.modeRadio.SetSelected(ModeMaps)
	bt.ui.browseSvc.ShowMappackMaps(rec.ID)
	bt.ui.setStatus("Loading maps from " + rec.Name + "...")
}
