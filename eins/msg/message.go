package msg

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/event"
	"github.com/ratel-online/eins/eins/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) StartingCardRevealed(ref card.Reference) string {
	return Sprintfln("First card is %s", ref.Card())
}

func (m MessageWriter) PlayerPlayedCard(player uuid.UUID, ref card.Reference) string {
	return Sprintfln("%s played %s!", Name(player), ref.Card())
}

func (m MessageWriter) PlayerDrewCards(player uuid.UUID, refs []card.Reference) string {
	switch len(refs) {
	case 0:
		return Sprintfln("%s could not draw, the deck is empty!", Name(player))
	case 1:
		return Sprintfln("%s drew a card!", Name(player))
	default:
		return Sprintfln("%s drew %d cards!", Name(player), len(refs))
	}
}

func (m MessageWriter) PlayerPickedColor(player uuid.UUID, c color.Color) string {
	return Sprintfln("%s picked color %s!", Name(player), c)
}

func (m MessageWriter) PlayerTurnSkipped(player uuid.UUID) string {
	return Sprintfln("%s's turn skipped!", Name(player))
}

func (m MessageWriter) TurnOrderReversed(clockwise bool) string {
	if clockwise {
		return Sprintln("Turn order has been reversed, now clockwise!")
	}
	return Sprintln("Turn order has been reversed, now counter-clockwise!")
}

func (m MessageWriter) PlayerPassed(player uuid.UUID) string {
	return Sprintfln("%s passed!", Name(player))
}

func (m MessageWriter) WinnerFound(player uuid.UUID) string {
	return Sprintfln("%s wins!", Name(player))
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s%s",
		color.Red.Paint("E"),
		color.Orange.Paint("I"),
		color.Blue.Paint("N"),
		color.Green.Paint("S"),
	)
}

// Turn describes what the active player is offered.
func (m MessageWriter) Turn(turn game.Turn) string {
	switch turn := turn.(type) {
	case game.PossibleCards:
		options := make([]string, 0, len(turn.Options))
		for _, option := range turn.Options {
			options = append(options, option.String())
		}
		return Sprintfln("It's %s's turn, playable: %s", Name(turn.Player), strings.Join(options, ", "))
	case game.DrawCards:
		return Sprintfln("It's %s's turn, draw %d!", Name(turn.Player), turn.Amount())
	case game.GameOver:
		return m.WinnerFound(turn.Winner)
	}
	return ""
}

// Event renders an engine event payload. ok is false for payloads it does not know.
func (m MessageWriter) Event(payload interface{}) (text string, ok bool) {
	switch payload := payload.(type) {
	case event.StartingCardRevealedPayload:
		return m.StartingCardRevealed(payload.Card), true
	case event.CardPlayedPayload:
		return m.PlayerPlayedCard(payload.Player, payload.Card), true
	case event.CardsDrawnPayload:
		return m.PlayerDrewCards(payload.Player, payload.Cards), true
	case event.ColorWishedPayload:
		return m.PlayerPickedColor(payload.Player, payload.Color), true
	case event.TurnSkippedPayload:
		return m.PlayerTurnSkipped(payload.Player), true
	case event.DirectionChangedPayload:
		return m.TurnOrderReversed(payload.Clockwise), true
	case event.PlayerPassedPayload:
		return m.PlayerPassed(payload.Player), true
	case event.GameFinishedPayload:
		return m.WinnerFound(payload.Winner), true
	}
	return "", false
}
