package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLaunchMissingExecutable(t *testing.T) {
	mapFile := filepath.Join(t.TempDir(), "42.Map.Gbx")
	if err := os.WriteFile(mapFile, []byte("gbx"), 0644); err != nil {
		t.Fatal(err)
	}

	l := New(filepath.Join(t.TempDir(), "missing.exe"))
	err := l.Launch(mapFile)
	if err == nil {
		t.Fatal("expected an error for a missing executable")
	}
	if !strings.Contains(err.Error(), "executable not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLaunchUnconfiguredExecutable(t *testing.T) {
	l := New("")
	if err := l.Launch("whatever.Map.Gbx"); err == nil {
		t.Fatal("expected an error when no executable is configured")
	}
}

func TestLaunchMissingMapFile(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "game")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	l := New(exe)
	err := l.Launch(filepath.Join(t.TempDir(), "missing.Map.Gbx"))
	if err == nil {
		t.Fatal("expected an error for a missing map file")
	}
	if !strings.Contains(err.Error(), "map file not found") {
		t.Errorf("unexpected error: %v", err)
	}
}
