package game

import (
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
)

// IsLegalNext reports whether candidate may be played on current. While a color wish is active
// only wild cards and cards of the wished color are accepted, whatever their symbol.
func IsLegalNext(current card.Card, candidate card.Card, wish color.Color) bool {
	if wish != color.None {
		return candidate.Wild() || candidate.Color() == wish
	}
	if current.Wild() || candidate.Wild() {
		return true
	}
	return current.Color() == candidate.Color() || current.Symbol() == candidate.Symbol()
}

// IsValidInitial reports whether c may open the stack. Wild cards never can.
func IsValidInitial(c card.Card) bool {
	return !c.Wild()
}

func LegalPlays(top card.Reference, hand *Hand, wish color.Color) []card.Reference {
	return hand.PlayableCards(top.Card(), wish)
}
