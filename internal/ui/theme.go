package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OverlayTheme defines a dark compact theme for the overlay window with
// reduced padding and font sizes. The overlay sits on top of a running game,
// so the palette is always dark regardless of the system variant.
type OverlayTheme struct{}

// NewOverlayTheme creates a new overlay theme
func NewOverlayTheme() fyne.Theme {
	return &OverlayTheme{}
}

// Color returns theme colors
func (t *OverlayTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 43, G: 43, B: 43, A: 255} // Dark gray
	case theme.ColorNameForeground:
		return color.RGBA{R: 238, G: 238, B: 238, A: 255} // Near-white text
	case theme.ColorNamePrimary:
		return color.RGBA{R: 13, G: 115, B: 119, A: 255} // Teal for primary actions
	case theme.ColorNameButton:
		return color.RGBA{R: 60, G: 60, B: 60, A: 255} // Raised gray
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 30, G: 30, B: 30, A: 255} // Recessed gray
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for warnings
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *OverlayTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *OverlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *OverlayTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	return theme.DefaultTheme().Size(name)
}
