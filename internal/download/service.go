package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tmxb/tmx-browser/internal/model"
)

// Service handles map download operations.
type Service struct {
	tasks       map[string]*model.DownloadTask
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	mapsDir     string
	fetcher     MapFetcher
	onUpdate    func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service writing into mapsDir.
func NewService(fetcher MapFetcher, mapsDir string, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:       make(map[string]*model.DownloadTask),
		maxParallel: maxParallel,
		mapsDir:     mapsDir,
		fetcher:     fetcher,
	}
}

// SetUpdateCallback sets the callback function for task updates. The callback
// fires on worker goroutines with a snapshot of the task, so it may read the
// fields without locking; the UI wires it through fyne.Do.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// MapFilePath returns the destination file for a map id.
func (s *Service) MapFilePath(mapID int) string {
	return filepath.Join(s.mapsDir, fmt.Sprintf("%d.Map.Gbx", mapID))
}

// AddTask queues a download for a map. A map with an unfinished task is not
// queued twice.
func (s *Service) AddTask(mapID int, mapName string) (*model.DownloadTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.MapID == mapID && !task.Status.IsFinished() {
			return nil, fmt.Errorf("download already in progress for map %d", mapID)
		}
	}

	task := &model.DownloadTask{
		ID:        uuid.NewString(),
		MapID:     mapID,
		MapName:   mapName,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	if s.activeCount < s.maxParallel {
		go s.startTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// startTask runs one download to completion.
func (s *Service) startTask(task *model.DownloadTask) {
	s.tasksMutex.Lock()
	s.activeCount++
	task.Status = model.TaskStatusStarting
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()
		s.startNextPendingTask()
	}()

	dest := s.MapFilePath(task.MapID)

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusDownloading
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	err := s.fetcher.DownloadMap(context.Background(), task.MapID, dest, func(percent int) {
		s.tasksMutex.Lock()
		task.Percent = percent
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
	})

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		log.Printf("[DOWNLOAD] map %d failed: %v", task.MapID, err)
	} else {
		task.Status = model.TaskStatusCompleted
		task.Percent = 100
		task.OutputPath = dest
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set. The worker keeps mutating
// the live task under tasksMutex, so the callback gets a copy taken under the
// lock, never the shared pointer.
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate == nil {
		return
	}
	s.tasksMutex.RLock()
	snapshot := *task
	s.tasksMutex.RUnlock()
	s.onUpdate(&snapshot)
}
