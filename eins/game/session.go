package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/eins/consts"
	"github.com/ratel-online/eins/eins/card"
	"github.com/ratel-online/eins/eins/card/action"
	"github.com/ratel-online/eins/eins/card/color"
	"github.com/ratel-online/eins/eins/event"
)

// Session is one game from dealing to the winning play. It is not safe for concurrent use.
type Session struct {
	id        uuid.UUID
	createdAt time.Time
	rng       *rand.Rand

	deck   *Deck
	stack  *Stack
	hands  []*Hand
	cycler *Cycler

	phase   Phase
	pending []Phase
	wish    color.Color
	// forcedDraw is set once the active player drew because nothing was playable.
	forcedDraw bool
}

type Option func(*Session)

// WithRand sets the shuffle source. Sessions are seeded from the clock otherwise.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New validates the players, reveals the starting card and deals the initial hands.
func New(hands []*Hand, opts ...Option) (*Session, error) {
	if len(hands) < consts.MinPlayers {
		return nil, consts.ErrorsNotEnoughPlayers
	}
	if len(hands) > consts.MaxPlayers {
		return nil, consts.ErrorsTooManyPlayers
	}
	owners := make(map[uuid.UUID]bool, len(hands))
	for _, hand := range hands {
		if hand == nil || !hand.Empty() || hand.Status() != Playing {
			return nil, consts.ErrorsInputInvalid
		}
		if owners[hand.Owner()] {
			return nil, consts.ErrorsDuplicatePlayer
		}
		owners[hand.Owner()] = true
	}

	s := &Session{
		createdAt: time.Now(),
		stack:     NewStack(),
		hands:     append([]*Hand(nil), hands...),
		cycler:    NewCycler(len(hands)),
		phase:     Init{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == uuid.Nil {
		s.id = uuid.New()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.deck = NewDeck(s.rng)
	startingCard, err := s.deck.FindStartingCard()
	if err != nil {
		return nil, err
	}
	s.stack.Add(startingCard)
	s.dealStartingCards()

	event.StartingCardRevealed.Emit(event.StartingCardRevealedPayload{
		SessionID: s.id,
		Card:      startingCard,
	})
	return s, nil
}

func (s *Session) dealStartingCards() {
	for round := 0; round < consts.InitialHandCards; round++ {
		for _, hand := range s.hands {
			hand.AddCards(s.deck.Draw(1))
		}
	}
}

// Start opens the first turn and returns what the first player is offered.
func (s *Session) Start() (Turn, error) {
	if _, ok := s.phase.(Init); !ok {
		return nil, consts.ErrorsGameStarted
	}
	s.phase = PlayCard{}
	return s.CurrentPlayerView(), nil
}

// Progress applies exactly one phase. sel is only accepted in a PlayCard phase where the active
// player has legal plays; anywhere else a non-nil sel fails with ErrorsIllegalPlay.
func (s *Session) Progress(sel *Selection) (Phase, error) {
	switch phase := s.phase.(type) {
	case Init:
		return s.phase, consts.ErrorsGameNotStarted
	case Finished:
		return s.phase, consts.ErrorsGameFinished
	case PlayCard:
		if err := s.playCard(sel); err != nil {
			return s.phase, err
		}
	default:
		if sel != nil {
			return s.phase, consts.ErrorsIllegalPlay
		}
		s.applyFollowUp(phase)
	}
	s.checkInvariant()
	return s.phase, nil
}

// applyFollowUp runs a phase that needs no decision from the active player.
func (s *Session) applyFollowUp(phase Phase) {
	switch phase := phase.(type) {
	case Draw:
		s.draw(phase)
	case Skip:
		skipped := s.hands[s.cycler.Next()]
		event.TurnSkipped.Emit(event.TurnSkippedPayload{
			SessionID: s.id,
			Player:    skipped.Owner(),
		})
		s.advance()
	case ColorWish:
		s.wish = phase.Color
		event.ColorWished.Emit(event.ColorWishedPayload{
			SessionID: s.id,
			Player:    s.CurrentPlayer().Owner(),
			Color:     phase.Color,
		})
		s.advance()
	case ChangeDirection:
		s.cycler.Reverse()
		event.DirectionChanged.Emit(event.DirectionChangedPayload{
			SessionID: s.id,
			Player:    s.CurrentPlayer().Owner(),
			Clockwise: s.cycler.Direction() == Clockwise,
		})
		s.advance()
	case NextPlayer:
		s.cycler.Next()
		s.forcedDraw = false
		s.advance()
	default:
		panic(fmt.Sprintf("unknown phase %T", phase))
	}
}

func (s *Session) playCard(sel *Selection) error {
	hand := s.CurrentPlayer()
	options := LegalPlays(s.Top(), hand, s.wish)
	if len(options) == 0 {
		if sel != nil {
			return consts.ErrorsIllegalPlay
		}
		if s.forcedDraw {
			event.PlayerPassed.Emit(event.PlayerPassedPayload{
				SessionID: s.id,
				Player:    hand.Owner(),
			})
			s.phase = NextPlayer{}
			return nil
		}
		s.forcedDraw = true
		s.phase = Draw{Actions: []action.Draw{action.DrawOne}}
		return nil
	}

	if sel == nil || !contains(options, sel.Card) {
		return consts.ErrorsIllegalPlay
	}
	played := sel.Card.Card()
	if played.Wild() && !validWish(sel.Color) {
		return consts.ErrorsColorRequired
	}

	hand.RemoveCard(sel.Card)
	s.stack.Add(sel.Card)
	if !played.Wild() {
		s.wish = color.None
	}
	event.CardPlayed.Emit(event.CardPlayedPayload{
		SessionID: s.id,
		Player:    hand.Owner(),
		Card:      sel.Card,
		Color:     played.Color(),
	})

	if hand.Empty() {
		s.finish(hand)
		return nil
	}
	s.pending = followUps(played, sel.Color)
	s.advance()
	return nil
}

// followUps lists the phases a played card schedules. Draw penalties land on the next player.
func followUps(played card.Card, wish color.Color) []Phase {
	var (
		phases []Phase
		draws  []action.Draw
	)
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.SkipTurnAction:
			phases = append(phases, Skip{})
		case action.ReverseTurnsAction:
			phases = append(phases, ChangeDirection{})
		case action.PickColorAction:
			phases = append(phases, ColorWish{Color: wish})
		case action.Draw:
			draws = append(draws, cardAction)
		}
	}
	phases = append(phases, NextPlayer{})
	for _, draw := range draws {
		phases = scheduleDraw(phases, draw)
	}
	return phases
}

func scheduleDraw(phases []Phase, a action.Draw) []Phase {
	if last := len(phases) - 1; last >= 0 {
		if _, ok := phases[last].(Draw); ok {
			phases[last] = addDrawAction(phases[last], a)
			return phases
		}
	}
	return append(phases, Draw{Actions: []action.Draw{a}})
}

func (s *Session) draw(phase Draw) {
	hand := s.CurrentPlayer()
	drawn := s.drawCards(action.Sum(phase.Actions))
	hand.AddCards(drawn)
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		SessionID: s.id,
		Player:    hand.Owner(),
		Cards:     drawn,
	})
	s.phase = PlayCard{}
}

// drawCards reshuffles the stack under its top card into the deck when the deck runs short.
// It returns fewer than amount cards only when both are exhausted.
func (s *Session) drawCards(amount int) []card.Reference {
	if s.deck.Size() < amount {
		s.deck.Refill(s.stack.TakeUnderTop())
	}
	return s.deck.Draw(amount)
}

func (s *Session) finish(winner *Hand) {
	for _, hand := range s.hands {
		if hand == winner {
			hand.status = Won
		} else {
			hand.status = Lost
		}
	}
	s.pending = nil
	s.phase = Finished{Winner: winner.Owner()}
	event.GameFinished.Emit(event.GameFinishedPayload{
		SessionID: s.id,
		Winner:    winner.Owner(),
	})
}

func (s *Session) advance() {
	if len(s.pending) == 0 {
		s.phase = PlayCard{}
		return
	}
	s.phase = s.pending[0]
	s.pending = s.pending[1:]
}

// checkInvariant panics unless deck, stack and hands together hold every reference exactly once.
func (s *Session) checkInvariant() {
	var seen [card.MaxCardNumber]bool
	total := 0
	mark := func(refs []card.Reference) {
		for _, ref := range refs {
			if seen[ref.Index()] {
				panic(fmt.Sprintf("session %s: card %s held twice", s.id, ref))
			}
			seen[ref.Index()] = true
			total++
		}
	}
	mark(s.deck.cards)
	mark(s.stack.cards)
	for _, hand := range s.hands {
		mark(hand.cards)
	}
	if total != card.MaxCardNumber {
		panic(fmt.Sprintf("session %s: %d cards in play, want %d", s.id, total, card.MaxCardNumber))
	}
}

// CurrentPlayerView projects the active player's options without changing the session.
func (s *Session) CurrentPlayerView() Turn {
	hand := s.CurrentPlayer()
	switch phase := s.phase.(type) {
	case Finished:
		return GameOver{Winner: phase.Winner}
	case Draw:
		return DrawCards{Player: hand.Owner(), Actions: append([]action.Draw(nil), phase.Actions...)}
	}
	options := LegalPlays(s.Top(), hand, s.wish)
	if len(options) == 0 {
		return DrawCards{Player: hand.Owner(), Actions: []action.Draw{action.DrawOne}}
	}
	return PossibleCards{Player: hand.Owner(), Options: options}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) Players() []*Hand {
	return append([]*Hand(nil), s.hands...)
}

func (s *Session) CurrentPlayer() *Hand {
	return s.hands[s.cycler.Current()]
}

func (s *Session) CurrentIndex() int {
	return s.cycler.Current()
}

func (s *Session) Direction() Direction {
	return s.cycler.Direction()
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Wish is the enforced color, color.None when no wish is active.
func (s *Session) Wish() color.Color {
	return s.wish
}

func (s *Session) Top() card.Reference {
	top, ok := s.stack.Top()
	if !ok {
		panic(fmt.Sprintf("session %s: empty stack", s.id))
	}
	return top
}

func (s *Session) Deck() []card.Reference {
	return s.deck.Cards()
}

func (s *Session) Stack() []card.Reference {
	return s.stack.Cards()
}

func (s *Session) Finished() bool {
	_, ok := s.phase.(Finished)
	return ok
}

func (s *Session) Winner() (*Hand, bool) {
	for _, hand := range s.hands {
		if hand.Status() == Won {
			return hand, true
		}
	}
	return nil, false
}

func contains(refs []card.Reference, searched card.Reference) bool {
	for _, ref := range refs {
		if ref == searched {
			return true
		}
	}
	return false
}

func validWish(c color.Color) bool {
	for _, candidate := range color.All {
		if c == candidate {
			return true
		}
	}
	return false
}
