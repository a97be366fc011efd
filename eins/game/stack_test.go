package game_test

import (
	"testing"

	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	stack := game.NewStack()
	_, ok := stack.Top()
	require.False(t, ok)

	cards := []card.Reference{
		colored(t, color.Blue, card.Five, 0),
		colored(t, color.Green, card.Five, 0),
		colored(t, color.Green, card.Seven, 0),
	}
	for _, ref := range cards {
		stack.Add(ref)
	}
	require.Equal(t, cards, stack.Cards())
	require.Equal(t, 3, stack.Size())

	top, ok := stack.Top()
	require.True(t, ok)
	require.Equal(t, cards[2], top)
}

func TestTakeUnderTop(t *testing.T) {
	stack := game.NewStack()
	require.Empty(t, stack.TakeUnderTop())

	cards := []card.Reference{
		colored(t, color.Blue, card.Five, 0),
		colored(t, color.Green, card.Five, 0),
		colored(t, color.Green, card.Seven, 0),
	}
	for _, ref := range cards {
		stack.Add(ref)
	}
	require.Equal(t, cards[:2], stack.TakeUnderTop())
	require.Equal(t, []card.Reference{cards[2]}, stack.Cards())
	require.Empty(t, stack.TakeUnderTop())
}
