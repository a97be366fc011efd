package event

import (
	"github.com/google/uuid"
)

var GameFinished = &gameFinishedEmitter{}

type GameFinishedPayload struct {
	SessionID uuid.UUID
	Winner    uuid.UUID
}

type GameFinishedListener interface {
	OnGameFinished(GameFinishedPayload)
}

type gameFinishedEmitter struct {
	listeners listenerList[GameFinishedListener]
}

func (e *gameFinishedEmitter) AddListener(listener GameFinishedListener) {
	e.listeners.add(listener)
}

func (e *gameFinishedEmitter) RemoveListener(listener GameFinishedListener) {
	e.listeners.remove(listener)
}

func (e *gameFinishedEmitter) Emit(payload GameFinishedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnGameFinished(payload)
	}
}
