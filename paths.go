package logging

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Station-Manager/utils"
)

// DirResolver returns the directory logs go to when Settings.LogPath is empty.
type DirResolver func() (string, error)

// DefaultLogDir returns the platform log directory for the running executable:
//   - Windows: %APPDATA%\<name>\logs
//   - macOS:   ~/Library/Logs/<name>
//   - others:  $XDG_DATA_HOME/<name>/logs, defaulting to ~/.local/share
func DefaultLogDir() (string, error) {
	name, err := utils.ExecName(true)
	if err != nil {
		return emptyString, err
	}
	if name == emptyString {
		name = fallbackRecordTarget
	}

	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("APPDATA")
		if base == emptyString {
			if base, err = os.UserConfigDir(); err != nil {
				return emptyString, err
			}
		}
		return filepath.Join(base, name, "logs"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return emptyString, err
		}
		return filepath.Join(home, "Library", "Logs", name), nil
	default:
		base := os.Getenv("XDG_DATA_HOME")
		if base == emptyString {
			home, err := os.UserHomeDir()
			if err != nil {
				return emptyString, err
			}
			base = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(base, name, "logs"), nil
	}
}
