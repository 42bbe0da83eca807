package models

import (
	"errors"
	"fmt"
	"math"
)

// Tier represents how close a guessed year is to the answer
type Tier int

const (
	Correct       Tier = iota
	ExtremelyHot       // within 3 years
	VeryHot            // within 10 years
	KindaHot           // within 25 years
	Lukewarm           // within 50 years
	KindaCold          // within 100 years
	VeryCold           // within 250 years
	ExtremelyCold      // beyond 250 years
)

// tierThresholds is checked in ascending order, first match wins
var tierThresholds = []struct {
	maxOffBy int
	tier     Tier
}{
	{0, Correct},
	{3, ExtremelyHot},
	{10, VeryHot},
	{25, KindaHot},
	{50, Lukewarm},
	{100, KindaCold},
	{250, VeryCold},
}

var tierNames = map[Tier]string{
	Correct:       "CORRECT",
	ExtremelyHot:  "EXTREMELY_HOT",
	VeryHot:       "VERY_HOT",
	KindaHot:      "KINDA_HOT",
	Lukewarm:      "LUKEWARM",
	KindaCold:     "KINDA_COLD",
	VeryCold:      "VERY_COLD",
	ExtremelyCold: "EXTREMELY_COLD",
}

var tierPhrases = map[Tier]string{
	ExtremelyHot:  "HOT HOT HOT!",
	VeryHot:       "Burning hot!",
	KindaHot:      "Hot!",
	Lukewarm:      "Warm!",
	KindaCold:     "Cold...",
	VeryCold:      "Freezing cold...",
	ExtremelyCold: "We're going to freeze to death...",
}

// AllTiers returns all tiers from closest to farthest
func AllTiers() []Tier {
	return []Tier{Correct, ExtremelyHot, VeryHot, KindaHot, Lukewarm, KindaCold, VeryCold, ExtremelyCold}
}

// Classify maps the distance between answer and guess to a tier
func Classify(answer, guess int) Tier {
	offBy := distance(answer, guess)
	for _, t := range tierThresholds {
		if offBy <= t.maxOffBy {
			return t.tier
		}
	}
	return ExtremelyCold
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Phrase returns the feedback line shown for a miss. Correct has none.
func (t Tier) Phrase() string {
	return tierPhrases[t]
}

// IsHot reports whether the guess is within 25 years but not correct
func (t Tier) IsHot() bool {
	return t > Correct && t <= KindaHot
}

// Question is one trivia hole: a prompt whose answer is a year
type Question struct {
	par    int
	prompt string
	answer int
}

// NewQuestion creates a question
func NewQuestion(par int, prompt string, answer int) Question {
	return Question{par: par, prompt: prompt, answer: answer}
}

func (q Question) Par() int       { return q.par }
func (q Question) Prompt() string { return q.prompt }
func (q Question) Answer() int    { return q.answer }

// Evaluate classifies a guessed year against the answer
func (q Question) Evaluate(guess int) Tier {
	return Classify(q.answer, guess)
}

const (
	// BunkerEscapeReach is how far a non-wedge club can move out of a bunker
	BunkerEscapeReach = 10

	// MaxClubStat caps a club's range and accuracy so swing arithmetic
	// cannot overflow
	MaxClubStat = 1_000_000
)

// ErrRangeExceeded is returned when a target is farther than a club can hit
var ErrRangeExceeded = errors.New("that target is beyond the range of this club")

// RangeError carries the details of a swing that could not reach its target
type RangeError struct {
	Club     string
	Distance int
	Range    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s reaches %d years, target is %d away", ErrRangeExceeded, e.Club, e.Range, e.Distance)
}

func (e *RangeError) Unwrap() error {
	return ErrRangeExceeded
}

// Source is the randomness used for swing jitter and question selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a random int in [0, n). n > 0.
	IntN(n int) int
}

// Club has a maximum range in years and a plus/minus accuracy
type Club struct {
	name      string
	rng       int
	accuracy  int
	sandWedge bool
}

// NewClub creates a club
func NewClub(name string, rng, accuracy int, sandWedge bool) Club {
	return Club{name: name, rng: rng, accuracy: accuracy, sandWedge: sandWedge}
}

func (c Club) Name() string      { return c.name }
func (c Club) Range() int        { return c.rng }
func (c Club) Accuracy() int     { return c.accuracy }
func (c Club) IsSandWedge() bool { return c.sandWedge }

// String returns e.g. "Driver - (Range: 1000, Accuracy: 200)"
func (c Club) String() string {
	return fmt.Sprintf("%s - (Range: %d, Accuracy: %d)", c.name, c.rng, c.accuracy)
}

// Swing hits from start towards target and returns the landing year.
//
// The landing year never passes back behind start: aiming forward lands in
// [start, maximum], aiming backward lands in [minimum, start]. Out of a
// bunker a non-wedge club only reaches BunkerEscapeReach years either way.
func (c Club) Swing(start, target int, inBunker bool, src Source) (int, error) {
	if d := distance(start, target); d > c.rng {
		return start, &RangeError{Club: c.name, Distance: d, Range: c.rng}
	}
	if target == start {
		return target, nil
	}

	reach := c.rng
	if inBunker && !c.sandWedge {
		reach = BunkerEscapeReach
	}
	minimum, maximum := start-reach, start+reach

	landing := target + c.jitter(src)
	if target > start {
		return max(start, min(maximum, landing)), nil
	}
	return min(start, max(minimum, landing)), nil
}

// jitter draws uniformly from [-accuracy, accuracy]
func (c Club) jitter(src Source) int {
	return src.IntN(2*c.accuracy+1) - c.accuracy
}

// distance returns |a-b|, saturating at math.MaxInt instead of wrapping
func distance(a, b int) int {
	d := a - b
	if a < b {
		d = b - a
	}
	if d < 0 {
		return math.MaxInt
	}
	return d
}
