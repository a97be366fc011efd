package game_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	owner := uuid.New()
	hand := game.NewHand(owner)
	require.Equal(t, owner, hand.Owner())
	require.Equal(t, game.Playing, hand.Status())
	require.True(t, hand.Empty())
	require.Equal(t, 0, hand.Size())
}

func TestAddCards(t *testing.T) {
	hand := game.NewHand(uuid.New())
	cards := []card.Reference{
		colored(t, color.Blue, card.Seven, 0),
		wild(t, card.ChooseColor, 0),
	}
	hand.AddCards(cards)
	require.Equal(t, cards, hand.Cards())
	require.False(t, hand.Empty())
	require.Equal(t, 2, hand.Size())
	require.True(t, hand.Contains(cards[1]))
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes_an_existing_card_keeping_order", func(t *testing.T) {
		hand := game.NewHand(uuid.New())
		hand.AddCards([]card.Reference{
			wild(t, card.ChooseColor, 0),
			colored(t, color.Orange, card.Reverse, 0),
			colored(t, color.Blue, card.DrawTwo, 0),
		})
		require.True(t, hand.RemoveCard(colored(t, color.Orange, card.Reverse, 0)))
		require.Equal(t, []card.Reference{
			wild(t, card.ChooseColor, 0),
			colored(t, color.Blue, card.DrawTwo, 0),
		}, hand.Cards())
	})

	t.Run("does_nothing_if_the_card_is_not_held", func(t *testing.T) {
		hand := game.NewHand(uuid.New())
		hand.AddCards([]card.Reference{
			wild(t, card.ChooseColor, 0),
			colored(t, color.Red, card.Six, 0),
		})
		require.False(t, hand.RemoveCard(colored(t, color.Red, card.Six, 1)))
		require.Equal(t, 2, hand.Size())
	})
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "playing", game.Playing.String())
	require.Equal(t, "won", game.Won.String())
	require.Equal(t, "lost", game.Lost.String())
}
