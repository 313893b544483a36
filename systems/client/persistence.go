package client

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowHitboxes bool `json:"showHitboxes"`
	Fullscreen   bool `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[settings] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// GetOrCreateSettings returns the settings singleton, seeding it from disk
// the first time.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		data := components.SettingsData{Fullscreen: ebiten.IsFullscreen()}
		if saved, err := LoadSettings(); err != nil {
			log.Printf("[settings] could not parse saved settings: %v", err)
		} else if saved != nil {
			data.ShowHitboxes = saved.ShowHitboxes
			data.Fullscreen = saved.Fullscreen
		}
		components.Settings.SetValue(ent, data)
	}
	return components.Settings.Get(components.Settings.MustFirst(e.World))
}

// UpdateSettings applies the hitbox and fullscreen toggles and saves them.
func UpdateSettings(e *ecs.ECS, bindings *cfg.InputConfig) {
	settings := GetOrCreateSettings(e)

	changed := false
	if anyJustPressed(bindings.ToggleHitbox) {
		settings.ShowHitboxes = !settings.ShowHitboxes
		changed = true
	}
	if anyJustPressed(bindings.ToggleFullscr) {
		settings.Fullscreen = !settings.Fullscreen
		changed = true
	}
	if ebiten.IsFullscreen() != settings.Fullscreen {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if !changed {
		return
	}

	saved := &SavedSettings{
		ShowHitboxes: settings.ShowHitboxes,
		Fullscreen:   settings.Fullscreen,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("[settings] could not save settings: %v", err)
	}
}
