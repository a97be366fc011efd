package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/action"
	"github.com/ratel-online/eins/eins/card/color"
)

// Phase is the active step of a turn. The set of variants is closed.
type Phase interface {
	isPhase()
	String() string
}

type Init struct{}

type PlayCard struct{}

type Draw struct {
	Actions []action.Draw
}

type Skip struct{}

type ColorWish struct {
	Color color.Color
}

type ChangeDirection struct{}

type NextPlayer struct{}

type Finished struct {
	Winner uuid.UUID
}

func (Init) isPhase()            {}
func (PlayCard) isPhase()        {}
func (Draw) isPhase()            {}
func (Skip) isPhase()            {}
func (ColorWish) isPhase()       {}
func (ChangeDirection) isPhase() {}
func (NextPlayer) isPhase()      {}
func (Finished) isPhase()        {}

func (Init) String() string            { return "Init" }
func (PlayCard) String() string        { return "PlayCard" }
func (Skip) String() string            { return "Skip" }
func (ChangeDirection) String() string { return "ChangeDirection" }
func (NextPlayer) String() string      { return "NextPlayer" }

func (p Draw) String() string {
	return fmt.Sprintf("Draw%v", p.Actions)
}

func (p ColorWish) String() string {
	return fmt.Sprintf("ColorWish(%s)", p.Color.Name())
}

func (p Finished) String() string {
	return fmt.Sprintf("Finished(%s)", p.Winner)
}

// addDrawAction appends a to the pending Draw phase p. Any other phase is a broken state machine.
func addDrawAction(p Phase, a action.Draw) Phase {
	draw, ok := p.(Draw)
	if !ok {
		panic(fmt.Sprintf("draw action %s added to %s phase", a, p))
	}
	actions := make([]action.Draw, 0, len(draw.Actions)+1)
	actions = append(actions, draw.Actions...)
	return Draw{Actions: append(actions, a)}
}

// Turn is what the active player is offered.
type Turn interface {
	isTurn()
}

type PossibleCards struct {
	Player  uuid.UUID
	Options []card.Reference
}

// DrawCards is offered when the active player must draw: a pending penalty, or a single card
// when nothing in hand can be played.
type DrawCards struct {
	Player  uuid.UUID
	Actions []action.Draw
}

func (t DrawCards) Amount() int {
	return action.Sum(t.Actions)
}

type GameOver struct {
	Winner uuid.UUID
}

func (PossibleCards) isTurn() {}
func (DrawCards) isTurn()     {}
func (GameOver) isTurn()      {}

// Selection is the caller's choice for a PlayCard phase. Color is required for wild cards.
type Selection struct {
	Card  card.Reference
	Color color.Color
}
