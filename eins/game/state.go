package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
)

type PlayerState struct {
	ID      uuid.UUID
	Cards   int
	Status  Status
	Current bool
}

// State is a read-only snapshot handed to strategies and renderers.
type State struct {
	SessionID         uuid.UUID
	Phase             Phase
	LastPlayedCard    card.Reference
	Wish              color.Color
	Direction         Direction
	DeckSize          int
	StackSize         int
	Players           []PlayerState
	CurrentPlayerHand []card.Reference
}

func (s *Session) State() State {
	players := make([]PlayerState, 0, len(s.hands))
	for index, hand := range s.hands {
		players = append(players, PlayerState{
			ID:      hand.Owner(),
			Cards:   hand.Size(),
			Status:  hand.Status(),
			Current: index == s.cycler.Current(),
		})
	}
	return State{
		SessionID:         s.id,
		Phase:             s.phase,
		LastPlayedCard:    s.Top(),
		Wish:              s.wish,
		Direction:         s.cycler.Direction(),
		DeckSize:          s.deck.Size(),
		StackSize:         s.stack.Size(),
		Players:           players,
		CurrentPlayerHand: s.CurrentPlayer().Cards(),
	}
}

func (s *Session) String() string {
	return s.State().String()
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Session: %s", s.SessionID))
	lines = append(lines, fmt.Sprintf("Phase: %s", s.Phase))
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard.Card()))
	if s.Wish != color.None {
		lines = append(lines, fmt.Sprintf("Wished color: %s", s.Wish.Name()))
	}
	lines = append(lines, fmt.Sprintf("Direction: %s", s.Direction))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s), stack: %d card(s)", s.DeckSize, s.StackSize))

	var playerStatuses []string
	for _, player := range s.Players {
		marker := " "
		if player.Current {
			marker = ">"
		}
		playerStatuses = append(playerStatuses, fmt.Sprintf("%s %s (%d card(s), %s)", marker, player.ID, player.Cards, player.Status))
	}
	lines = append(lines, "Turn order:")
	lines = append(lines, playerStatuses...)

	hand := make([]string, 0, len(s.CurrentPlayerHand))
	for _, ref := range s.CurrentPlayerHand {
		hand = append(hand, ref.Card().String())
	}
	lines = append(lines, fmt.Sprintf("Current hand: [%s]", strings.Join(hand, " ")))

	return strings.Join(lines, "\n")
}
