package event

import (
	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
)

var CardsDrawn = &cardsDrawnEmitter{}

type CardsDrawnPayload struct {
	SessionID uuid.UUID
	Player    uuid.UUID
	Cards     []card.Reference
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners listenerList[CardsDrawnListener]
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners.add(listener)
}

func (e *cardsDrawnEmitter) RemoveListener(listener CardsDrawnListener) {
	e.listeners.remove(listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnCardsDrawn(payload)
	}
}
