package network

import (
	"errors"
	"net/http"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eins/consts"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// writeError maps engine errors to HTTP statuses. Exit errors are server side failures.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var e consts.Error
	switch {
	case errors.Is(err, consts.ErrorsSessionNotFound):
		status = http.StatusNotFound
	case errors.As(err, &e) && !e.Exit:
		status = http.StatusBadRequest
	default:
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Error(err)
	}
}
