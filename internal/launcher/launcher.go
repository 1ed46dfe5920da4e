package launcher

// Package launcher starts the game with a selected map file. It only spawns
// the process; window management and hiding the overlay stay with the UI.

import (
	"fmt"
	"log"
	"os"
	"os/exec"
)

// Launcher spawns the game executable with a map file argument.
type Launcher struct {
	exePath string
}

// New creates a launcher for the given game executable path.
func New(exePath string) *Launcher {
	return &Launcher{exePath: exePath}
}

// SetExecutable updates the game executable path.
func (l *Launcher) SetExecutable(exePath string) {
	l.exePath = exePath
}

// Launch starts the game with the given map file. Both the executable and the
// map file must already exist; the process is started detached and not
// awaited.
func (l *Launcher) Launch(mapPath string) error {
	if l.exePath == "" {
		return fmt.Errorf("game executable not configured")
	}
	if _, err := os.Stat(l.exePath); err != nil {
		return fmt.Errorf("game executable not found: %s", l.exePath)
	}
	if _, err := os.Stat(mapPath); err != nil {
		return fmt.Errorf("map file not found: %s", mapPath)
	}

	cmd := exec.Command(l.exePath, "/useexedir", "/singleinst", "/file="+mapPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch game: %w", err)
	}
	log.Printf("[LAUNCH] %s (pid %d)", mapPath, cmd.Process.Pid)

	// Detach: reap the child in the background so it never zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}
