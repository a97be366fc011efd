package event

import (
	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
)

var CardPlayed = &cardPlayedEmitter{}

type CardPlayedPayload struct {
	SessionID uuid.UUID
	Player    uuid.UUID
	Card      card.Reference
	Color     color.Color
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners listenerList[CardPlayedListener]
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners.add(listener)
}

func (e *cardPlayedEmitter) RemoveListener(listener CardPlayedListener) {
	e.listeners.remove(listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnCardPlayed(payload)
	}
}
