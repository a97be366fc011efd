package event

import "sync"

// DummyListener records every payload it receives.
type DummyListener struct {
	mu               sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	payloads := make([]interface{}, len(l.receivedPayloads))
	copy(payloads, l.receivedPayloads)
	return payloads
}

func (l *DummyListener) record(payload interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnStartingCardRevealed(payload StartingCardRevealedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.record(payload)
}

func (l *DummyListener) OnColorWished(payload ColorWishedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnDirectionChanged(payload DirectionChangedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnGameFinished(payload GameFinishedPayload) {
	l.record(payload)
}
