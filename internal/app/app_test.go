package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAndClose(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", LogFileName)

	c, err := New(Options{
		DBPath:   filepath.Join(dir, "scores.db"),
		LogPath:  logPath,
		LogLevel: "debug",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Store == nil {
		t.Fatal("Store = nil, expected an open database")
	}
	if c.Settings == nil || c.Audio == nil {
		t.Fatal("settings and audio must be set")
	}

	if _, err := c.Store.SaveScore("snake", "ana", 7); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}
	c.RecordLaunch("snake", "ana")
	if best := c.HighScores(); best["snake"] != 7 {
		t.Errorf("HighScores() = %v", best)
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(data), "config loaded") {
		t.Errorf("log = %q, expected debug output", data)
	}
}

func TestNewWithoutStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var buf bytes.Buffer
	c, err := New(Options{NoStore: true, LogOutput: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if c.Store != nil {
		t.Error("Store should be nil")
	}
	if len(c.HighScores()) != 0 {
		t.Error("HighScores() should be empty without a store")
	}
	c.RecordLaunch("pong", "")
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tests := []struct {
		name string
		opts Options
	}{
		{"difficulty", Options{NoStore: true, Difficulty: "insane", LogOutput: &bytes.Buffer{}}},
		{"log level", Options{NoStore: true, LogLevel: "loud", LogOutput: &bytes.Buffer{}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opts); err == nil {
				t.Error("New() error = nil, expected an error")
			}
		})
	}
}
