package download

import (
	"context"

	"github.com/tmxb/tmx-browser/internal/model"
)

// MapFetcher streams one map file to disk, reporting whole-percent progress.
type MapFetcher interface {
	DownloadMap(ctx context.Context, mapID int, dest string, onProgress func(percent int)) error
}

// Downloader defines the interface for the download service. The update
// callback receives a snapshot of the task, safe to read without locking.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	AddTask(mapID int, mapName string) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	MapFilePath(mapID int) string
}
