package player

import (
	"math/rand"

	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
)

type naiveStrategy struct {
	rng *rand.Rand
}

func NewNaiveStrategy(rng *rand.Rand) Strategy {
	return naiveStrategy{rng: rng}
}

func (s naiveStrategy) Name() string {
	return "naive"
}

func (s naiveStrategy) PickColor(state game.State) color.Color {
	return color.All[s.rng.Intn(len(color.All))]
}

func (s naiveStrategy) Play(options []card.Reference, state game.State) card.Reference {
	return options[0]
}
