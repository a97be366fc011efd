package game

import (
	"github.com/ratel-online/eins/eins/card"
)

// Stack is the discard pile. The last element is the top.
type Stack struct {
	cards []card.Reference
}

func NewStack() *Stack {
	return &Stack{cards: make([]card.Reference, 0, 54)}
}

func (s *Stack) Add(ref card.Reference) {
	s.cards = append(s.cards, ref)
}

func (s *Stack) Cards() []card.Reference {
	cards := make([]card.Reference, len(s.cards))
	copy(cards, s.cards)
	return cards
}

func (s *Stack) Top() (card.Reference, bool) {
	stackSize := len(s.cards)
	if stackSize == 0 {
		return card.Reference{}, false
	}
	return s.cards[stackSize-1], true
}

// TakeUnderTop removes and returns every card except the top one.
func (s *Stack) TakeUnderTop() []card.Reference {
	if len(s.cards) <= 1 {
		return []card.Reference{}
	}
	under := make([]card.Reference, len(s.cards)-1)
	copy(under, s.cards[:len(s.cards)-1])
	s.cards = []card.Reference{s.cards[len(s.cards)-1]}
	return under
}

func (s *Stack) Size() int {
	return len(s.cards)
}
