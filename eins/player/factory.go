package player

import (
	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/game"
)

// CreateHands returns empty hands owned by freshly generated ids.
func CreateHands(numberOfPlayers int) []*game.Hand {
	hands := make([]*game.Hand, 0, numberOfPlayers)
	for i := 0; i < numberOfPlayers; i++ {
		hands = append(hands, game.NewHand(uuid.New()))
	}
	return hands
}
