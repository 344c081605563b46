package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory under $HOME holding configs,
// the score database, logs and screenshots.
const AppDirName = ".gamecenter"

// Source names where a config file was read from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Options controls Load.
type Options struct {
	Dir        string           // Optional directory searched first
	Difficulty DifficultyPreset // Preset applied after loading
}

// Load reads every config file and applies the difficulty preset.
// Search order per file: Options.Dir -> ~/.gamecenter/configs ->
// ./configs -> embedded default -> built-in Go defaults.
// A broken file in Options.Dir or the user directory is an error, since
// both are edited by hand and watched for changes; a broken ./configs file
// falls through to the next location.
func Load(opts Options) (*Settings, map[string]string, error) {
	s := Default()
	sources := make(map[string]string)

	files := []struct {
		name string
		dst  any
	}{
		{"shell", &s.Shell},
		{"launcher", &s.Launcher},
		{"audio", &s.Audio},
		{"snake", &s.Snake},
		{"pong", &s.Pong},
		{"breakout", &s.Breakout},
		{"flappy", &s.Flappy},
		{"memory", &s.Memory},
		{"tictactoe", &s.TicTacToe},
		{"pacman", &s.Pacman},
	}

	for _, f := range files {
		src, err := loadInto(opts.Dir, f.name, f.dst)
		if err != nil {
			return nil, nil, err
		}
		sources[f.name] = src
	}

	preset := opts.Difficulty
	if preset == "" {
		preset = DifficultyNormal
	}
	s.ApplyPreset(preset)
	s.normalize()

	return s, sources, nil
}

// loadInto decodes the first readable <name>.yaml into dst, which must
// already hold the built-in defaults so that absent keys keep them.
func loadInto(customDir, name string, dst any) (string, error) {
	filename := name + ".yaml"

	if customDir != "" {
		path := filepath.Join(ExpandHome(customDir), filename)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, dst); err != nil {
				return "", fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
			return SourceCustom, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		data, err := os.ReadFile(userCfgPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, dst); err != nil {
				return "", fmt.Errorf("config: failed to parse %s: %w", userCfgPath, err)
			}
			return SourceUser, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("config: failed to read %s: %w", userCfgPath, err)
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, dst); err == nil {
			return SourceLocal, nil
		}
	}

	if data, err := defaultFiles.ReadFile("defaults/" + filename); err == nil {
		if err := yaml.Unmarshal(data, dst); err == nil {
			return SourceEmbedded, nil
		}
	}

	return SourceBuiltin, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName, "configs", filename)
}

// AppDir returns ~/.gamecenter, or ./.gamecenter if home is unavailable.
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(home, AppDirName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// normalize repairs values a hand-edited file may have broken.
func (s *Settings) normalize() {
	if s.Shell.FPS <= 0 {
		s.Shell.FPS = 60
	}
	if s.Shell.WindowScale <= 0 || s.Shell.WindowScale > 1 {
		s.Shell.WindowScale = 0.8
	}
	if s.Launcher.Columns <= 0 {
		s.Launcher.Columns = 3
	}
	if s.Memory.Rows*s.Memory.Cols%2 != 0 || s.Memory.Rows <= 0 || s.Memory.Cols <= 0 {
		s.Memory.Rows, s.Memory.Cols = 4, 4
	}
	if s.TicTacToe.MinSize < 3 {
		s.TicTacToe.MinSize = 3
	}
	if s.TicTacToe.MaxSize < s.TicTacToe.MinSize {
		s.TicTacToe.MaxSize = s.TicTacToe.MinSize
	}
	if s.TicTacToe.Size < s.TicTacToe.MinSize || s.TicTacToe.Size > s.TicTacToe.MaxSize {
		s.TicTacToe.Size = s.TicTacToe.MinSize
	}
	if s.Snake.MovesPerSecond <= 0 {
		s.Snake.MovesPerSecond = 10
	}
	if s.Snake.MaxMovesPerSecond < s.Snake.MovesPerSecond {
		s.Snake.MaxMovesPerSecond = s.Snake.MovesPerSecond
	}
	if s.Snake.CellWidth <= 0 {
		s.Snake.CellWidth = 1
	}
}
