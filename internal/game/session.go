package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/napolitain/hotcold-golf/internal/models"
)

// ErrGameOver is returned when guessing on a session that has been won
var ErrGameOver = errors.New("game over: the hole is already finished")

// State of a session
type State int

const (
	InProgress State = iota
	Won
)

func (s State) String() string {
	if s == Won {
		return "won"
	}
	return "in_progress"
}

// GuessReport describes the outcome of one successful swing
type GuessReport struct {
	Club     models.Club
	Target   int
	Landing  int
	Tier     models.Tier
	InBunker bool
	Bunker   Bunker
	Guesses  int

	// Set when Tier is Correct
	Won   bool
	Par   int
	Score int
}

// Session is the state of one hole: a question played from year 0
type Session struct {
	id       string
	question models.Question
	club     models.Club
	year     int
	guesses  int
	inBunker bool
	state    State
	src      models.Source
	log      zerolog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the diagnostics logger
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession starts a hole at StartYear with the given question and club.
// src drives swing jitter.
func NewSession(question models.Question, club models.Club, src models.Source, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		question: question,
		club:     club,
		year:     StartYear,
		state:    InProgress,
		src:      src,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	return s
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Question() models.Question { return s.question }
func (s *Session) Club() models.Club         { return s.club }
func (s *Session) Year() int                 { return s.year }
func (s *Session) Guesses() int              { return s.guesses }
func (s *Session) InBunker() bool            { return s.inBunker }
func (s *Session) State() State              { return s.state }

// Bunker returns the bunker the ball is in, if any
func (s *Session) Bunker() (Bunker, bool) {
	if !s.inBunker {
		return Bunker{}, false
	}
	return BunkerAt(s.year)
}

// Score is par minus guesses so far. It can be negative.
func (s *Session) Score() int {
	return s.question.Par() - s.guesses
}

// ChangeClub replaces the current club. The caller checks the club is in the bag.
func (s *Session) ChangeClub(club models.Club) {
	s.log.Debug().Str("from", s.club.Name()).Str("to", club.Name()).Msg("club changed")
	s.club = club
}

// Guess swings the current club from the current year towards target.
//
// The guess counter goes up even when the swing fails with
// models.ErrRangeExceeded; nothing else changes in that case.
func (s *Session) Guess(target int) (GuessReport, error) {
	if s.state == Won {
		return GuessReport{}, ErrGameOver
	}

	s.guesses++

	landing, err := s.club.Swing(s.year, target, s.inBunker, s.src)
	if err != nil {
		s.log.Debug().Err(err).
			Str("club", s.club.Name()).
			Int("year", s.year).
			Int("target", target).
			Int("guesses", s.guesses).
			Msg("swing out of range")
		return GuessReport{}, err
	}

	tier := s.question.Evaluate(landing)
	bunker, inBunker := BunkerAt(landing)
	s.inBunker = inBunker
	s.year = landing

	report := GuessReport{
		Club:     s.club,
		Target:   target,
		Landing:  landing,
		Tier:     tier,
		InBunker: inBunker,
		Bunker:   bunker,
		Guesses:  s.guesses,
	}

	s.log.Debug().
		Str("club", s.club.Name()).
		Int("target", target).
		Int("landing", landing).
		Stringer("tier", tier).
		Bool("bunker", inBunker).
		Int("guesses", s.guesses).
		Msg("swing")

	if tier == models.Correct {
		s.state = Won
		report.Won = true
		report.Par = s.question.Par()
		report.Score = s.Score()
		s.log.Info().
			Int("guesses", s.guesses).
			Int("par", report.Par).
			Int("score", report.Score).
			Msg("hole finished")
	}

	return report, nil
}
