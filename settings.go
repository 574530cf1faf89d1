package logging

import (
	"os"

	smerrors "github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the record the UI hands to InitLogger. Keys are snake_case on
// the wire. A Settings value is read-only once passed to Initialize.
//
// LogType, ConsoleLevel and FileLevel are mandatory keys: a nil pointer is
// rejected, while any present value, including "", is accepted.
type Settings struct {
	// LogPath overrides the platform default log directory when non-empty.
	LogPath string `json:"log_path" yaml:"log_path"`
	// LogType selects the destination policy: "session", "unified" or anything
	// else for a single app.log.
	LogType *string `json:"log_type" yaml:"log_type" validate:"required"`
	// MaxFileSize is the rollover limit in bytes. Only read for "unified".
	MaxFileSize uint64 `json:"max_file_size" yaml:"max_file_size"`
	// ConsoleLevel and FileLevel are level names; unknown names mean info.
	ConsoleLevel *string `json:"console_level" yaml:"console_level" validate:"required"`
	FileLevel    *string `json:"file_level" yaml:"file_level" validate:"required"`
}

// Value returns a pointer to v, for filling the mandatory Settings keys.
func Value(v string) *string {
	return &v
}

// DefaultSettings mirrors the shell's shipped defaults: unified files of
// 5 MiB, debug on the console and info in the file.
func DefaultSettings() Settings {
	return Settings{
		LogType:      Value(LogTypeUnified),
		MaxFileSize:  defaultMaxFileSize,
		ConsoleLevel: Value("debug"),
		FileLevel:    Value("info"),
	}
}

func (s Settings) logType() string      { return deref(s.LogType) }
func (s Settings) consoleLevel() string { return deref(s.ConsoleLevel) }
func (s Settings) fileLevel() string    { return deref(s.FileLevel) }

func deref(p *string) string {
	if p == nil {
		return emptyString
	}
	return *p
}

// LoadSettings reads a YAML settings file on top of DefaultSettings.
// Keys missing from the file keep their default value.
func LoadSettings(path string) (Settings, error) {
	const op smerrors.Op = "logging.LoadSettings"
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, smerrors.New(op).Err(err).Msg("Failed to read the settings file.")
	}
	if err = yaml.Unmarshal(data, &settings); err != nil {
		return settings, smerrors.New(op).Err(kindError(ErrInvalidSettings, err)).Msg(errMsgConfigInvalid)
	}
	return settings, nil
}
