package components

import "github.com/yohamta/donburi"

// SettingsData holds the display toggles persisted between runs.
type SettingsData struct {
	ShowHitboxes bool
	Fullscreen   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
