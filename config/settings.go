package config

// DebugConfig contains command-line debug options
type DebugConfig struct {
	ShowHitboxes bool // Start with the hitbox overlay on
}

// WindowConfig contains the ebiten window setup.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// DefaultWindow sizes the window to the default arena.
func DefaultWindow() WindowConfig {
	return WindowConfig{
		Title:  "Doomerang Duel",
		Width:  1280,
		Height: 720,
	}
}
