package player

import (
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
)

type goodStrategy struct{}

func NewGoodStrategy() Strategy {
	return goodStrategy{}
}

func (s goodStrategy) Name() string {
	return "good"
}

// PickColor wishes the color held most often. Wild cards count for every color.
func (s goodStrategy) PickColor(state game.State) color.Color {
	if len(state.CurrentPlayerHand) == 0 {
		return color.Red
	}

	colorCounts := make(map[color.Color]int)
	for _, ref := range state.CurrentPlayerHand {
		if ref.Card().Wild() {
			for _, c := range color.All {
				colorCounts[c]++
			}
		} else {
			colorCounts[ref.Card().Color()]++
		}
	}

	mostFrequentColor := color.Red
	mostFrequentColorAmount := 0
	for _, c := range color.All {
		if colorCounts[c] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[c]
			mostFrequentColor = c
		}
	}
	return mostFrequentColor
}

// Play picks the option that leaves the most follow-up plays in hand.
func (s goodStrategy) Play(options []card.Reference, state game.State) card.Reference {
	mostDiscardableCardIndex := 0
	maxSpareCards := -1

	for cardIndex, option := range options {
		spareCards := 0
		for _, held := range state.CurrentPlayerHand {
			if held != option && game.IsLegalNext(option.Card(), held.Card(), color.None) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return options[mostDiscardableCardIndex]
}
