package event

import "sync"

type listenerList[L comparable] struct {
	mu        sync.RWMutex
	listeners []L
}

func (l *listenerList[L]) add(listener L) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, listener)
}

func (l *listenerList[L]) remove(listener L) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for index, registered := range l.listeners {
		if registered == listener {
			l.listeners = append(l.listeners[:index:index], l.listeners[index+1:]...)
			return
		}
	}
}

// snapshot lets Emit call listeners without holding the lock, so listeners may (un)register.
func (l *listenerList[L]) snapshot() []L {
	l.mu.RLock()
	defer l.mu.RUnlock()
	listeners := make([]L, len(l.listeners))
	copy(listeners, l.listeners)
	return listeners
}

// Listener receives every engine event.
type Listener interface {
	StartingCardRevealedListener
	CardPlayedListener
	CardsDrawnListener
	ColorWishedListener
	TurnSkippedListener
	DirectionChangedListener
	PlayerPassedListener
	GameFinishedListener
}

func Subscribe(listener Listener) {
	StartingCardRevealed.AddListener(listener)
	CardPlayed.AddListener(listener)
	CardsDrawn.AddListener(listener)
	ColorWished.AddListener(listener)
	TurnSkipped.AddListener(listener)
	DirectionChanged.AddListener(listener)
	PlayerPassed.AddListener(listener)
	GameFinished.AddListener(listener)
}

func Unsubscribe(listener Listener) {
	StartingCardRevealed.RemoveListener(listener)
	CardPlayed.RemoveListener(listener)
	CardsDrawn.RemoveListener(listener)
	ColorWished.RemoveListener(listener)
	TurnSkipped.RemoveListener(listener)
	DirectionChanged.RemoveListener(listener)
	PlayerPassed.RemoveListener(listener)
	GameFinished.RemoveListener(listener)
}
