package components

import (
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/yohamta/donburi"
)

// ViewData is the last snapshot handed to the renderers.
type ViewData struct {
	Snapshot messages.Snapshot
}

var View = donburi.NewComponentType[ViewData]()
