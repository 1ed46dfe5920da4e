package ui

// Package ui contains the Fyne-based desktop overlay for browsing the map
// exchange. It wires user interactions to the browse, download, favorites and
// launcher services and renders search results, map details and settings.
