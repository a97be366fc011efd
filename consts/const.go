package consts

import (
	"time"
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	InitialHandCards = 7

	DefaultAddr   = "127.0.0.1:8080"
	SessionTTL    = 24 * time.Hour
	SweepInterval = 1 * time.Minute

	// AutoplayStepLimit caps Autoplay so a broken session cannot spin forever.
	AutoplayStepLimit = 100000
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsNotEnoughPlayers        = NewErr(1, false, "Not enough players. ")
	ErrorsTooManyPlayers          = NewErr(1, false, "Too many players. ")
	ErrorsDuplicatePlayer         = NewErr(1, false, "Duplicate player. ")
	ErrorsCardReferenceOutOfRange = NewErr(1, false, "Card reference out of range. ")
	ErrorsEmptyDeck               = NewErr(2, true, "Deck is empty. ")
	ErrorsIllegalPlay             = NewErr(1, false, "Card can not be played now. ")
	ErrorsColorRequired           = NewErr(1, false, "Wild card needs a color. ")
	ErrorsGameNotStarted          = NewErr(1, false, "Game not started. ")
	ErrorsGameStarted             = NewErr(1, false, "Game already started. ")
	ErrorsGameFinished            = NewErr(1, false, "Game finished. ")
	ErrorsSessionNotFound         = NewErr(3, false, "Session not found. ")
	ErrorsInputInvalid            = NewErr(1, false, "Input invalid. ")
	ErrorsAutoplayStalled         = NewErr(2, true, "Autoplay did not finish. ")
)
