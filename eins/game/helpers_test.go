package game_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
	"github.com/stretchr/testify/require"
)

// ref returns the nth catalog reference resolving to c.
func ref(t *testing.T, c card.Card, nth int) card.Reference {
	t.Helper()
	for _, candidate := range card.References() {
		if candidate.Card().Equal(c) {
			if nth == 0 {
				return candidate
			}
			nth--
		}
	}
	require.FailNow(t, "card not in catalog", "%s", c)
	return card.Reference{}
}

func colored(t *testing.T, c color.Color, symbol card.Symbol, nth int) card.Reference {
	t.Helper()
	return ref(t, card.NewColorCard(c, symbol), nth)
}

func wild(t *testing.T, symbol card.Symbol, nth int) card.Reference {
	t.Helper()
	return ref(t, card.NewWildCard(symbol), nth)
}

func newHands(count int) []*game.Hand {
	hands := make([]*game.Hand, 0, count)
	for i := 0; i < count; i++ {
		hands = append(hands, game.NewHand(uuid.New()))
	}
	return hands
}

func newSession(t *testing.T, players int, seed int64) *game.Session {
	t.Helper()
	session, err := game.New(newHands(players), game.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return session
}
