package player

import (
	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/eins/game"
)

// Step applies one phase of session, letting strategy decide when a play is due.
func Step(session *game.Session, strategy Strategy) (game.Phase, error) {
	if _, ok := session.Phase().(game.Init); ok {
		if _, err := session.Start(); err != nil {
			return session.Phase(), err
		}
		return session.Phase(), nil
	}
	return session.Progress(Decide(session, strategy))
}

// Decide returns the selection strategy makes for the active phase, nil when none is needed.
func Decide(session *game.Session, strategy Strategy) *game.Selection {
	if _, ok := session.Phase().(game.PlayCard); !ok {
		return nil
	}
	turn, ok := session.CurrentPlayerView().(game.PossibleCards)
	if !ok {
		return nil
	}
	state := session.State()
	sel := &game.Selection{Card: strategy.Play(turn.Options, state)}
	if sel.Card.Card().Wild() {
		sel.Color = strategy.PickColor(state)
	}
	return sel
}

// Autoplay steps session until it is finished or limit phases were applied.
func Autoplay(session *game.Session, strategy Strategy, limit int) error {
	for steps := 0; !session.Finished(); steps++ {
		if steps >= limit {
			return consts.ErrorsAutoplayStalled
		}
		if _, err := Step(session, strategy); err != nil {
			return err
		}
	}
	return nil
}
