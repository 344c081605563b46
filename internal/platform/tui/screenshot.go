package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
)

// DefaultScreenshotDir is where Ctrl+S writes plain-text captures.
func DefaultScreenshotDir() string {
	return filepath.Join(config.AppDir(), "screenshots")
}

// saveScreenshot writes the screen without colors and returns the path.
func saveScreenshot(dir, name string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}
