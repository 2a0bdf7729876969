// Package settings persists player preferences through gdata, which
// picks the right per-platform data directory (including Android).
// A nil gdata manager gives a memory-only store.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/huuugs/block/internal/config"
)

// AppName is the gdata application name.
const AppName = "blockeater"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the persisted player preferences.
type Settings struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	Volume       float64 `yaml:"volume"` // 0.0 to 1.0
	Difficulty   string  `yaml:"difficulty"`
	Profile      string  `yaml:"profile"` // active profile, empty for guest
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.7,
		Difficulty:   string(config.DifficultyNormal),
	}
}

// Keys lists the names accepted by Set.
var Keys = []string{"sound", "volume", "difficulty", "profile"}

// Manager loads, changes and saves Settings.
type Manager struct {
	store    *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open creates a gdata-backed manager. If gdata cannot be opened the
// manager falls back to memory-only mode and the error is logged.
func Open(logger *log.Logger) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, using defaults", "err", err)
		store = nil
	}
	return NewManager(store, logger)
}

// NewManager creates a manager on top of an existing gdata manager,
// which may be nil, and loads saved settings.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{
		store:    store,
		settings: Defaults(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		m.logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads saved settings. Missing data leaves the defaults.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Defaults()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Defaults()
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Defaults()
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	m.settings = loaded
	m.logger.Debug("settings loaded", "sound", loaded.SoundEnabled, "volume", loaded.Volume, "difficulty", loaded.Difficulty)
	return nil
}

// Save writes the settings. In memory-only mode it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetSoundEnabled turns sound cues on or off.
func (m *Manager) SetSoundEnabled(on bool) {
	m.settings.SoundEnabled = on
}

// SetVolume sets the volume, clamped to [0, 1].
func (m *Manager) SetVolume(v float64) {
	m.settings.Volume = max(0, min(v, 1))
}

// SetDifficulty selects a difficulty preset by name.
func (m *Manager) SetDifficulty(name string) error {
	p, ok := config.ParsePreset(name)
	if !ok {
		return fmt.Errorf("settings: unknown difficulty %q", name)
	}
	m.settings.Difficulty = string(p)
	return nil
}

// SetProfile selects the active profile. Empty means guest.
func (m *Manager) SetProfile(name string) {
	m.settings.Profile = strings.TrimSpace(name)
}

// Set changes one setting from its string form, as given on the
// command line.
func (m *Manager) Set(key, value string) error {
	switch key {
	case "sound":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("settings: sound: %w", err)
		}
		m.SetSoundEnabled(on)
	case "volume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("settings: volume: %w", err)
		}
		m.SetVolume(v)
	case "difficulty":
		return m.SetDifficulty(value)
	case "profile":
		m.SetProfile(value)
	default:
		return fmt.Errorf("settings: unknown key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
