package event

import (
	"github.com/google/uuid"
)

var TurnSkipped = &turnSkippedEmitter{}

type TurnSkippedPayload struct {
	SessionID uuid.UUID
	Player    uuid.UUID
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type turnSkippedEmitter struct {
	listeners listenerList[TurnSkippedListener]
}

func (e *turnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners.add(listener)
}

func (e *turnSkippedEmitter) RemoveListener(listener TurnSkippedListener) {
	e.listeners.remove(listener)
}

func (e *turnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnTurnSkipped(payload)
	}
}
