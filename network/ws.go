package network

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/database"
	"github.com/ratel-online/eins/eins/event"
	"github.com/ratel-online/eins/eins/msg"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveWs pushes every event of one session to the client, one text message per event.
func serveWs(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, consts.ErrorsSessionNotFound)
		return
	}
	if _, err = database.GetSession(id); err != nil {
		writeError(w, err)
		return
	}

	stream := newEventStream(id)
	event.Subscribe(stream)
	defer stream.close()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	defer conn.Close()
	log.Infof("websocket client connected to session %s\n", id)

	async.Async(func() {
		stream.write(conn)
	})
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	log.Infof("websocket client left session %s\n", id)
}

// eventStream is an event.Listener for a single session. Lines are dropped when the client lags.
type eventStream struct {
	sessionID uuid.UUID
	lines     chan string
	done      chan struct{}
	once      sync.Once
}

func newEventStream(sessionID uuid.UUID) *eventStream {
	return &eventStream{
		sessionID: sessionID,
		lines:     make(chan string, 256),
		done:      make(chan struct{}),
	}
}

func (s *eventStream) close() {
	s.once.Do(func() {
		event.Unsubscribe(s)
		close(s.done)
	})
}

func (s *eventStream) write(conn *websocket.Conn) {
	for {
		select {
		case <-s.done:
			return
		case line := <-s.lines:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				log.Error(err)
				return
			}
		}
	}
}

func (s *eventStream) push(sessionID uuid.UUID, payload interface{}) {
	if sessionID != s.sessionID {
		return
	}
	text, ok := msg.Message.Event(payload)
	if !ok {
		return
	}
	select {
	case s.lines <- strings.TrimSpace(text):
	case <-s.done:
	default:
	}
}

func (s *eventStream) OnStartingCardRevealed(payload event.StartingCardRevealedPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnCardPlayed(payload event.CardPlayedPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnCardsDrawn(payload event.CardsDrawnPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnColorWished(payload event.ColorWishedPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnTurnSkipped(payload event.TurnSkippedPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnDirectionChanged(payload event.DirectionChangedPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnPlayerPassed(payload event.PlayerPassedPayload) {
	s.push(payload.SessionID, payload)
}

func (s *eventStream) OnGameFinished(payload event.GameFinishedPayload) {
	s.push(payload.SessionID, payload)
}
