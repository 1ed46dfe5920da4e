package download

// Package download manages map file downloads: task lifecycle, a small
// parallelism cap, and progress propagation to the UI.
