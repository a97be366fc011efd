package event

import (
	"github.com/google/uuid"
)

var PlayerPassed = &playerPassedEmitter{}

type PlayerPassedPayload struct {
	SessionID uuid.UUID
	Player    uuid.UUID
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	listeners listenerList[PlayerPassedListener]
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners.add(listener)
}

func (e *playerPassedEmitter) RemoveListener(listener PlayerPassedListener) {
	e.listeners.remove(listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnPlayerPassed(payload)
	}
}
