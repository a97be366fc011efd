package game

import (
	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
)

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

type Hand struct {
	owner  uuid.UUID
	cards  []card.Reference
	status Status
}

func NewHand(owner uuid.UUID) *Hand {
	return &Hand{
		owner: owner,
		cards: make([]card.Reference, 0, 7),
	}
}

func (h *Hand) Owner() uuid.UUID {
	return h.owner
}

func (h *Hand) Status() Status {
	return h.status
}

func (h *Hand) AddCards(cards []card.Reference) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Reference {
	cards := make([]card.Reference, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(ref card.Reference) bool {
	for _, held := range h.cards {
		if held == ref {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card, wish color.Color) []card.Reference {
	var playableCards []card.Reference
	for _, candidate := range h.cards {
		if IsLegalNext(lastPlayedCard, candidate.Card(), wish) {
			playableCards = append(playableCards, candidate)
		}
	}
	return playableCards
}

// RemoveCard drops ref keeping the order of the remaining cards. It reports whether ref was held.
func (h *Hand) RemoveCard(ref card.Reference) bool {
	for index, held := range h.cards {
		if held == ref {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
