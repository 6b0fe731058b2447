// Package settings persists the demo client's window preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"
	"slices"

	cfg "github.com/automoto/samurai/config"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Saved represents the settings data stored on disk
type Saved struct {
	Scale         int  `json:"scale"`
	ShowCollision bool `json:"showCollision"`
	ShowFPS       bool `json:"showFPS"`
}

// Store is the subset of gdata.Manager used here.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Open returns the per-user data store for appName.
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return m, nil
}

// Load reads saved settings. It returns nil and no error when nothing has
// been saved yet.
func Load(s Store) (*Saved, error) {
	data, err := s.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &saved, nil
}

// Save writes v to the store.
func Save(s Store, v *Saved) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Current snapshots the live configuration.
func Current() *Saved {
	return &Saved{
		Scale:         cfg.C.Scale,
		ShowCollision: cfg.Debug.ShowCollision,
		ShowFPS:       cfg.Debug.ShowFPS,
	}
}

// Apply copies saved values into the live configuration. A scale that is not
// one of the offered scales is ignored.
func (s *Saved) Apply() {
	if s == nil {
		return
	}
	if slices.Contains(cfg.Settings.Scales, s.Scale) {
		cfg.C.Scale = s.Scale
	}
	cfg.Debug.ShowCollision = s.ShowCollision
	cfg.Debug.ShowFPS = s.ShowFPS
}

// NextScale returns the offered scale after cur, wrapping around.
func NextScale(cur int) int {
	scales := cfg.Settings.Scales
	i := slices.Index(scales, cur)
	return scales[(i+1)%len(scales)]
}
