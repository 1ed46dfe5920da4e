package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconDownload = "⬇"
	IconStar     = "★"
	IconFolder   = "📁"
	IconRemove   = "×"
)

// Text fragments
const (
	AnyFilterOption = "Any"

	ModeMaps     = "Maps"
	ModeMappacks = "Mappacks"
)

// Layout sizing
const (
	ThumbnailWidth  float32 = 160
	ThumbnailHeight float32 = 120
)

// Status bar behavior
const (
	StatusAutoClear = 5 * time.Second
)
