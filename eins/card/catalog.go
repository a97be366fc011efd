package card

import (
	"fmt"

	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/eins/card/color"
)

const MaxCardNumber = 108

var catalog = createCatalog()

func createCatalog() [MaxCardNumber]Card {
	cards := make([]Card, 0, MaxCardNumber)
	cards = append(cards, createWildCards()...)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	if len(cards) != MaxCardNumber {
		panic(fmt.Sprintf("catalog holds %d cards, want %d", len(cards), MaxCardNumber))
	}
	var fixed [MaxCardNumber]Card
	copy(fixed[:], cards)
	return fixed
}

func createWildCards() []Card {
	chooseColor := NewWildCard(ChooseColor)
	drawFour := NewWildCard(DrawFour)
	return []Card{
		chooseColor, chooseColor, chooseColor, chooseColor,
		drawFour, drawFour, drawFour, drawFour,
	}
}

// createColorCards yields 0-9, +2, skip, reverse and then a second copy of everything but zero.
func createColorCards(cardColor color.Color) []Card {
	cards := make([]Card, 0, 25)
	for symbol := Zero; symbol <= Nine; symbol++ {
		cards = append(cards, NewColorCard(cardColor, symbol))
	}
	cards = append(cards,
		NewColorCard(cardColor, DrawTwo),
		NewColorCard(cardColor, Skip),
		NewColorCard(cardColor, Reverse),
	)
	for symbol := One; symbol <= Nine; symbol++ {
		cards = append(cards, NewColorCard(cardColor, symbol))
	}
	return append(cards,
		NewColorCard(cardColor, DrawTwo),
		NewColorCard(cardColor, Skip),
		NewColorCard(cardColor, Reverse),
	)
}

// Catalog returns a copy of every card in catalog order.
func Catalog() []Card {
	cards := make([]Card, MaxCardNumber)
	copy(cards, catalog[:])
	return cards
}

// Reference points at exactly one catalog entry. Outside this package it is built by NewReference
// or References; the zero value is a valid reference to entry 0, so callers that may have no card
// pair it with an error or ok flag.
type Reference struct {
	n uint8
}

func NewReference(n int) (Reference, error) {
	if n < 0 || n >= MaxCardNumber {
		return Reference{}, consts.ErrorsCardReferenceOutOfRange
	}
	return Reference{n: uint8(n)}, nil
}

// References returns all references in catalog order.
func References() []Reference {
	refs := make([]Reference, MaxCardNumber)
	for i := range refs {
		refs[i] = Reference{n: uint8(i)}
	}
	return refs
}

func (r Reference) Index() int {
	return int(r.n)
}

func (r Reference) Card() Card {
	return catalog[r.n]
}

func (r Reference) String() string {
	return fmt.Sprintf("#%d %s", r.n, r.Card())
}
