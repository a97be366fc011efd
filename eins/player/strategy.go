package player

import (
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
)

// Strategy decides for an automated player. Play is only called with at least one option.
type Strategy interface {
	Name() string
	PickColor(state game.State) color.Color
	Play(options []card.Reference, state game.State) card.Reference
}
