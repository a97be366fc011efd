package game

import (
	"math/rand"

	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/eins/card"
)

type Deck struct {
	cards []card.Reference
	rng   *rand.Rand
}

// NewDeck returns all catalog references shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{
		cards: card.References(),
		rng:   rng,
	}
	deck.shuffle()
	return deck
}

// Draw removes up to amount references from the end of the deck.
func (d *Deck) Draw(amount int) []card.Reference {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount <= 0 {
		return []card.Reference{}
	}
	cards := make([]card.Reference, 0, amount)
	for i := 0; i < amount; i++ {
		last := len(d.cards) - 1
		cards = append(cards, d.cards[last])
		d.cards = d.cards[:last]
	}
	return cards
}

// FindStartingCard removes and returns the first reference, scanning from the front, that may
// open the stack. The reference is only meaningful when err is nil.
func (d *Deck) FindStartingCard() (card.Reference, error) {
	for index, ref := range d.cards {
		if IsValidInitial(ref.Card()) {
			d.cards = append(d.cards[:index], d.cards[index+1:]...)
			return ref, nil
		}
	}
	return card.Reference{}, consts.ErrorsEmptyDeck
}

// Refill puts cards back into the deck and reshuffles it.
func (d *Deck) Refill(cards []card.Reference) {
	d.cards = append(d.cards, cards...)
	d.shuffle()
}

func (d *Deck) Cards() []card.Reference {
	cards := make([]card.Reference, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}
