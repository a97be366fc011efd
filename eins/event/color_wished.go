package event

import (
	"github.com/google/uuid"
	"github.com/ratel-online/eins/eins/card/color"
)

var ColorWished = &colorWishedEmitter{}

type ColorWishedPayload struct {
	SessionID uuid.UUID
	Player    uuid.UUID
	Color     color.Color
}

type ColorWishedListener interface {
	OnColorWished(ColorWishedPayload)
}

type colorWishedEmitter struct {
	listeners listenerList[ColorWishedListener]
}

func (e *colorWishedEmitter) AddListener(listener ColorWishedListener) {
	e.listeners.add(listener)
}

func (e *colorWishedEmitter) RemoveListener(listener ColorWishedListener) {
	e.listeners.remove(listener)
}

func (e *colorWishedEmitter) Emit(payload ColorWishedPayload) {
	for _, listener := range e.listeners.snapshot() {
		listener.OnColorWished(payload)
	}
}
