package database

import (
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/eins/game"
)

var sessions = hashmap.New()

// Session guards one game. Hold the lock for every call into the embedded game session.
type Session struct {
	sync.Mutex
	*game.Session
	UpdatedAt time.Time
}

// Touch marks the session as active. The caller holds the lock.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

func SaveSession(session *game.Session) *Session {
	saved := &Session{Session: session, UpdatedAt: time.Now()}
	sessions.Set(session.ID().String(), saved)
	log.Infof("session %s created with %d players\n", session.ID(), len(session.Players()))
	return saved
}

func GetSession(id uuid.UUID) (*Session, error) {
	if v, ok := sessions.Get(id.String()); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsSessionNotFound
}

func DeleteSession(id uuid.UUID) error {
	if _, ok := sessions.Get(id.String()); !ok {
		return consts.ErrorsSessionNotFound
	}
	sessions.Del(id.String())
	log.Infof("session %s removed\n", id)
	return nil
}

// GetSessions lists all sessions, oldest first.
func GetSessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt().Equal(list[j].CreatedAt()) {
			return list[i].ID().String() < list[j].ID().String()
		}
		return list[i].CreatedAt().Before(list[j].CreatedAt())
	})
	return list
}

// Sweep removes sessions idle for longer than ttl and returns how many were removed.
// Each session is checked and removed under its own lock so a concurrent Touch keeps it alive.
func Sweep(ttl time.Duration, now time.Time) int {
	removed := 0
	for _, session := range GetSessions() {
		session.Lock()
		if session.UpdatedAt.Add(ttl).Before(now) {
			sessions.Del(session.ID().String())
			log.Infof("session %s is idle for %s, removed.\n", session.ID(), ttl)
			removed++
		}
		session.Unlock()
	}
	return removed
}

func StartJanitor(interval, ttl time.Duration) {
	async.Async(func() {
		for {
			time.Sleep(interval)
			Sweep(ttl, time.Now())
		}
	})
}
