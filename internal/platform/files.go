package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// dataDirName is the per-user directory holding maps, cache and favorites.
const dataDirName = ".tmx-browser"

// CreateDirectoryIfNotExists creates the directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DefaultDataDir returns the per-user application data directory, falling
// back to the working directory when no home directory is available.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return dataDirName
	}
	return filepath.Join(homeDir, dataDirName)
}

// OpenFolder opens a directory in the system file manager.
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command("open", absPath).Start()
	case OSWindows:
		return exec.Command("explorer", absPath).Start()
	case OSLinux:
		return exec.Command("xdg-open", absPath).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
