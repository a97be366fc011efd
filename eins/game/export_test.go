package game

import (
	"math/rand"

	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/action"
	"github.com/ratel-online/eins/eins/card/color"
)

var AddDrawAction = addDrawAction

func NewDeckFrom(rng *rand.Rand, refs []card.Reference) *Deck {
	return &Deck{cards: append([]card.Reference(nil), refs...), rng: rng}
}

func (s *Session) SetPhase(phase Phase) {
	s.phase = phase
}

func (s *Session) SetWish(wish color.Color) {
	s.wish = wish
}

func (s *Session) QueueDraw(actions ...action.Draw) {
	s.phase = Draw{Actions: actions}
}

// take removes ref from wherever it currently lives.
func (s *Session) take(ref card.Reference) {
	if remove(&s.deck.cards, ref) || remove(&s.stack.cards, ref) {
		return
	}
	for _, hand := range s.hands {
		if hand.RemoveCard(ref) {
			return
		}
	}
	panic("card not in play")
}

func remove(refs *[]card.Reference, ref card.Reference) bool {
	for index, held := range *refs {
		if held == ref {
			*refs = append((*refs)[:index], (*refs)[index+1:]...)
			return true
		}
	}
	return false
}

// SetHand replaces the hand of player with refs. Its old cards go back into the deck.
func (s *Session) SetHand(player int, refs ...card.Reference) {
	hand := s.hands[player]
	old := hand.Cards()
	hand.cards = hand.cards[:0]
	s.deck.cards = append(s.deck.cards, old...)
	for _, ref := range refs {
		s.take(ref)
		hand.cards = append(hand.cards, ref)
	}
}

// SetTop moves ref onto the stack.
func (s *Session) SetTop(ref card.Reference) {
	s.take(ref)
	s.stack.cards = append(s.stack.cards, ref)
}

// EmptyDeck moves the whole deck under the stack top.
func (s *Session) EmptyDeck() {
	top := s.stack.cards[len(s.stack.cards)-1]
	under := append(s.stack.cards[:len(s.stack.cards)-1:len(s.stack.cards)-1], s.deck.cards...)
	s.stack.cards = append(under, top)
	s.deck.cards = s.deck.cards[:0]
}

func (s *Session) CheckInvariant() {
	s.checkInvariant()
}

// SetDeckTop moves ref to the end of the deck so it is drawn next.
func (s *Session) SetDeckTop(ref card.Reference) {
	s.take(ref)
	s.deck.cards = append(s.deck.cards, ref)
}
