package model

import (
	"strconv"
	"time"
)

// DownloadTask represents a single map file download.
type DownloadTask struct {
	ID         string
	MapID      int
	MapName    string
	Status     TaskStatus
	Percent    int    // 0 to 100
	LastError  string // last error message if any
	OutputPath string // path to the downloaded .Map.Gbx file
	StartedAt  time.Time
	FinishedAt time.Time
}

// DisplayTitle returns the map name, falling back to the numeric id.
func (dt *DownloadTask) DisplayTitle() string {
	if dt.MapName != "" {
		return dt.MapName
	}
	return "Map " + strconv.Itoa(dt.MapID)
}
