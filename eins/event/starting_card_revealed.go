package event

import (
	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
)

var StartingCardRevealed = &startingCardRevealedEmitter{}

type StartingCardRevealedPayload struct {
	SessionID uuid.UUID
	Card      card.Reference
}

type StartingCardRevealedListener interface {
	OnStartingCardRevealed(StartingCardRevealedPayload)
}

type startingCardRevealedEmitter struct {
	listeners listenerList[StartingCardRevealedListener]
}

func (e *startingCardRevealedEmitter) AddListener(listener StartingCardRevealedListener) {
	e.listeners.add(listener)
}

func (e *startingCardRevealedEmitter) RemoveListener(listener StartingCardRevealedListener) {
	e.listeners.remove(listener)
}

func (e *startingCardRevealedEmitter) Emit(payload StartingCardRevealedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnStartingCardRevealed(payload)
	}
}
