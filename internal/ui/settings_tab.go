package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tmxb/tmx-browser/internal/platform"
)

// SettingsTab edits the persisted application settings.
type SettingsTab struct {
	ui *RootUI

	exeEntry     *widget.Entry
	mapsDirEntry *widget.Entry
	baseURLEntry *widget.Entry
	timeoutEntry *widget.Entry
	perPageEntry *widget.Entry
	hotkeyEntry  *widget.Entry

	verifyCheck    *widget.Check
	autoCacheCheck *widget.Check
	hiddenCheck    *widget.Check

	content *fyne.Container
}

// NewSettingsTab creates the settings tab
func NewSettingsTab(ui *RootUI) *SettingsTab {
	st := &SettingsTab{ui: ui}
	st.setupUI()
	st.loadCurrentSettings()
	return st
}

// Container returns the tab's root container.
func (st *SettingsTab) Container() *fyne.Container {
	return st.content
}

func (st *SettingsTab) setupUI() {
	st.exeEntry = widget.NewEntry()
	st.exeEntry.SetPlaceHolder("Path to the game executable")
	browseExeBtn := widget.NewButton("Browse", st.onBrowseExecutable)
	exeRow := container.NewBorder(nil, nil, nil, browseExeBtn, st.exeEntry)

	st.mapsDirEntry = widget.NewEntry()
	st.mapsDirEntry.SetPlaceHolder("Directory downloaded maps are saved to")
	browseDirBtn := widget.NewButton("Browse", st.onBrowseMapsDirectory)
	openDirBtn := widget.NewButton(IconFolder, st.onOpenMapsDirectory)
	mapsDirRow := container.NewBorder(nil, nil, nil, container.NewHBox(browseDirBtn, openDirBtn), st.mapsDirEntry)

	st.baseURLEntry = widget.NewEntry()
	st.timeoutEntry = widget.NewEntry()
	st.timeoutEntry.SetPlaceHolder("seconds")
	st.perPageEntry = widget.NewEntry()
	st.perPageEntry.SetPlaceHolder("10-100")
	st.hotkeyEntry = widget.NewEntry()
	st.hotkeyEntry.SetPlaceHolder("F9")

	st.verifyCheck = widget.NewCheck("Verify TLS certificates", nil)
	st.autoCacheCheck = widget.NewCheck("Fetch thumbnails on demand", nil)
	st.hiddenCheck = widget.NewCheck("Start hidden", nil)

	saveBtn := widget.NewButton("Save", st.onSave)
	saveBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel("Game"),
		widget.NewSeparator(),
		widget.NewLabel("Executable:"),
		exeRow,
		widget.NewLabel("Maps directory:"),
		mapsDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Exchange"),
		widget.NewSeparator(),
		widget.NewLabel("Base URL:"),
		st.baseURLEntry,
		widget.NewLabel("Request timeout:"),
		st.timeoutEntry,
		widget.NewLabel("Results per search:"),
		st.perPageEntry,
		st.verifyCheck,
		st.autoCacheCheck,

		widget.NewSeparator(),
		widget.NewLabel("Overlay"),
		widget.NewSeparator(),
		widget.NewLabel("Show/hide hotkey:"),
		st.hotkeyEntry,
		st.hiddenCheck,

		widget.NewSeparator(),
		saveBtn,
		widget.NewLabel("Connection changes take effect after a restart."),
	)

	st.content = container.NewBorder(nil, nil, nil, nil, container.NewVScroll(form))
}

// loadCurrentSettings loads current settings into the UI
func (st *SettingsTab) loadCurrentSettings() {
	s := st.ui.settings
	st.exeEntry.SetText(s.GetGameExecutable())
	st.mapsDirEntry.SetText(s.GetMapsDirectory())
	st.baseURLEntry.SetText(s.GetAPIBaseURL())
	st.timeoutEntry.SetText(strconv.Itoa(s.GetRequestTimeout()))
	st.perPageEntry.SetText(strconv.Itoa(s.GetMapsPerPage()))
	st.hotkeyEntry.SetText(s.GetToggleHotkey())
	st.verifyCheck.SetChecked(s.GetVerifySSL())
	st.autoCacheCheck.SetChecked(s.GetAutoCacheThumbnails())
	st.hiddenCheck.SetChecked(s.GetLaunchHidden())
}

// onBrowseExecutable handles game executable browsing
func (st *SettingsTab) onBrowseExecutable() {
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		defer uri.Close()
		st.exeEntry.SetText(uri.URI().Path())
	}, st.ui.window)
}

// onOpenMapsDirectory reveals the maps directory in the system file manager
func (st *SettingsTab) onOpenMapsDirectory() {
	if err := platform.OpenFolder(st.ui.settings.GetMapsDirectory()); err != nil {
		st.ui.setStatus("Opening maps folder failed: " + err.Error())
	}
}

// onBrowseMapsDirectory handles maps directory browsing
func (st *SettingsTab) onBrowseMapsDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		st.mapsDirEntry.SetText(uri.Path())
	}, st.ui.window)
}

// onSave handles saving the settings
func (st *SettingsTab) onSave() {
	s := st.ui.settings

	s.SetGameExecutable(st.exeEntry.Text)
	st.ui.gameLauncher.SetExecutable(st.exeEntry.Text)

	if st.mapsDirEntry.Text != "" {
		s.SetMapsDirectory(st.mapsDirEntry.Text)
	}
	if st.baseURLEntry.Text != "" {
		s.SetAPIBaseURL(st.baseURLEntry.Text)
	}
	if v, err := strconv.Atoi(st.timeoutEntry.Text); err == nil {
		s.SetRequestTimeout(v)
	}
	if v, err := strconv.Atoi(st.perPageEntry.Text); err == nil {
		s.SetMapsPerPage(v)
	}
	s.SetToggleHotkey(st.hotkeyEntry.Text)
	s.SetVerifySSL(st.verifyCheck.Checked)
	s.SetAutoCacheThumbnails(st.autoCacheCheck.Checked)
	s.SetLaunchHidden(st.hiddenCheck.Checked)

	// Reflect any clamping back into the form.
	st.loadCurrentSettings()
	st.ui.setStatus("Settings saved")
}
