package network

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/database"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/game"
	"github.com/ratel-online/eins/eins/msg"
	"github.com/ratel-online/eins/eins/player"
)

type Http struct {
	addr string
}

func NewHttpServer(addr string) Http {
	return Http{addr: addr}
}

func (h Http) Serve() error {
	log.Infof("Http server listening on %s\n", h.addr)
	return http.ListenAndServe(h.addr, Router())
}

func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", index)
	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", listSessions)
		r.Post("/", createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", showSession)
			r.Delete("/", deleteSession)
			r.Post("/progress", progressSession)
			r.Post("/autoplay", autoplaySession)
		})
	})
	r.Get("/ws/sessions/{id}", serveWs)
	return r
}

// index plays a two bot game to the end and shows how it went.
func index(w http.ResponseWriter, r *http.Request) {
	session, err := game.New(player.CreateHands(consts.MinPlayers))
	if err != nil {
		writeError(w, err)
		return
	}
	if err = player.Autoplay(session, player.NewGoodStrategy(), consts.AutoplayStepLimit); err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, msg.Message.Welcome()+render(session))
}

func listSessions(w http.ResponseWriter, r *http.Request) {
	var lines []string
	for _, session := range database.GetSessions() {
		lines = append(lines, session.ID().String())
	}
	if len(lines) == 0 {
		writeText(w, http.StatusOK, "")
		return
	}
	writeText(w, http.StatusOK, msg.Sprintlns(lines))
}

func createSession(w http.ResponseWriter, r *http.Request) {
	players := consts.MinPlayers
	if value := r.URL.Query().Get("players"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			writeError(w, consts.ErrorsInputInvalid)
			return
		}
		players = n
	}
	session, err := game.New(player.CreateHands(players))
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err = session.Start(); err != nil {
		writeError(w, err)
		return
	}
	saved := database.SaveSession(session)
	saved.Lock()
	defer saved.Unlock()
	w.Header().Set("Location", "/sessions/"+session.ID().String())
	writeText(w, http.StatusCreated, msg.Sprintln(session.ID())+render(session))
}

// withSession runs fn on the session named in the path while holding its lock.
func withSession(w http.ResponseWriter, r *http.Request, fn func(*database.Session) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, consts.ErrorsSessionNotFound)
		return
	}
	session, err := database.GetSession(id)
	if err != nil {
		writeError(w, err)
		return
	}
	session.Lock()
	defer session.Unlock()
	if err = fn(session); err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, render(session.Session))
}

func showSession(w http.ResponseWriter, r *http.Request) {
	withSession(w, r, func(session *database.Session) error {
		return nil
	})
}

func progressSession(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	withSession(w, r, func(session *database.Session) error {
		if _, err := session.Progress(sel); err != nil {
			return err
		}
		session.Touch()
		logFinished(session)
		return nil
	})
}

func autoplaySession(w http.ResponseWriter, r *http.Request) {
	withSession(w, r, func(session *database.Session) error {
		err := player.Autoplay(session.Session, player.NewGoodStrategy(), consts.AutoplayStepLimit)
		session.Touch()
		if err != nil {
			return err
		}
		logFinished(session)
		return nil
	})
}

func deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, consts.ErrorsSessionNotFound)
		return
	}
	if err = database.DeleteSession(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseSelection reads ?card=K&color=C. No card means no selection.
func parseSelection(r *http.Request) (*game.Selection, error) {
	query := r.URL.Query()
	value := query.Get("card")
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, consts.ErrorsInputInvalid
	}
	ref, err := card.NewReference(n)
	if err != nil {
		return nil, err
	}
	sel := &game.Selection{Card: ref}
	if name := query.Get("color"); name != "" {
		if sel.Color, err = color.ByName(name); err != nil {
			return nil, consts.ErrorsInputInvalid
		}
	}
	return sel, nil
}

func logFinished(session *database.Session) {
	if winner, ok := session.Winner(); ok {
		log.Infof("session %s finished, %s wins\n", session.ID(), winner.Owner())
	}
}

func render(session *game.Session) string {
	var b strings.Builder
	b.WriteString(msg.Sprintln(session.String()))
	b.WriteString(msg.Message.Turn(session.CurrentPlayerView()))
	return b.String()
}
