// Package settings persists the player's preferences (grid overlay, camera
// mode, window size) between runs. Game state itself is never persisted.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the user preferences.
type Settings struct {
	ShowGrid     bool `yaml:"showGrid"`     // draw the floor reference grid
	FreeCamera   bool `yaml:"freeCamera"`   // pan the camera instead of moving the warden
	WindowWidth  int  `yaml:"windowWidth"`  // window size in pixels
	WindowHeight int  `yaml:"windowHeight"`
}

// Default returns the default preferences.
func Default() *Settings {
	return &Settings{
		ShowGrid:     true,
		FreeCamera:   false,
		WindowWidth:  1200,
		WindowHeight: 800,
	}
}

// Storage keys within the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves settings through a gdata store. A nil store puts
// the manager in memory-only mode: settings work but are not persisted.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a settings manager backed by the given store, loading
// any previously saved settings. Load failures fall back to defaults and
// are not fatal.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: Default(),
	}
	if err := m.Load(); err != nil {
		log.Printf("Warning: failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load reads settings from the store. Missing store or missing data leaves
// the defaults in place.
func (m *Manager) Load() error {
	if m.store == nil {
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	m.settings = &loaded
	return nil
}

// Save writes the current settings to the store. A nil store is a no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings. Mutations take effect immediately
// in memory; call Save to persist them.
func (m *Manager) Settings() *Settings {
	return m.settings
}
