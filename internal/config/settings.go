package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Player backend names accepted in Settings.Player.
const (
	PlayerMPV     = "mpv"
	PlayerSpeaker = "speaker"
)

// Settings holds all configuration options.
type Settings struct {
	// Player selects the playback backend: "mpv" spawns an external
	// player process per track, "speaker" decodes in-process and
	// streams to the audio device.
	Player string `json:"player"`

	// MPVPath overrides the mpv executable name for the mpv backend.
	MPVPath string `json:"mpv_path"`

	// RequireConfirm asks for a yes/no review before any tag write.
	RequireConfirm bool `json:"require_confirm"`

	// LogFile receives logrus output so the TUI screen stays clean.
	// Empty disables logging.
	LogFile string `json:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Player:         PlayerMPV,
		MPVPath:        "mpv",
		RequireConfirm: false,
		LogFile:        "",
	}
}

// Validate checks cross-field constraints.
func (s *Settings) Validate() error {
	switch s.Player {
	case PlayerMPV, PlayerSpeaker:
		return nil
	default:
		return fmt.Errorf("unknown player backend %q", s.Player)
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error; defaults are returned.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
