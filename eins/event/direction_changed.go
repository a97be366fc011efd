package event

import (
	"github.com/google/uuid"
)

var DirectionChanged = &directionChangedEmitter{}

type DirectionChangedPayload struct {
	SessionID uuid.UUID
	Player    uuid.UUID
	Clockwise bool
}

type DirectionChangedListener interface {
	OnDirectionChanged(DirectionChangedPayload)
}

type directionChangedEmitter struct {
	listeners listenerList[DirectionChangedListener]
}

func (e *directionChangedEmitter) AddListener(listener DirectionChangedListener) {
	e.listeners.add(listener)
}

func (e *directionChangedEmitter) RemoveListener(listener DirectionChangedListener) {
	e.listeners.remove(listener)
}

func (e *directionChangedEmitter) Emit(payload DirectionChangedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnDirectionChanged(payload)
	}
}
