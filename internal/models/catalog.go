package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCatalog is returned when a catalog cannot be played
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the bag of clubs and the pool of questions a game draws from
type Catalog struct {
	Clubs     []Club
	Questions []Question
}

// DefaultCatalog returns the built-in clubs and questions
func DefaultCatalog() Catalog {
	return Catalog{Clubs: DefaultClubs(), Questions: DefaultQuestions()}
}

// DefaultClubs returns the built-in golf bag, driver first
func DefaultClubs() []Club {
	return []Club{
		NewClub("Driver", 1000, 200, false),
		NewClub("3_Wood", 500, 100, false),
		NewClub("5_Wood", 250, 50, false),
		NewClub("3_Iron", 200, 40, false),
		NewClub("4_Iron", 175, 35, false),
		NewClub("5_Iron", 150, 30, false),
		NewClub("6_Iron", 125, 25, false),
		NewClub("7_Iron", 100, 20, false),
		NewClub("8_Iron", 75, 15, false),
		NewClub("9_Iron", 50, 10, false),
		NewClub("Pitching_Wedge", 25, 5, false),
		NewClub("Sand_Wedge", 50, 25, true),
		NewClub("Putter", 10, 1, false),
	}
}

// DefaultQuestions returns the built-in question pool
func DefaultQuestions() []Question {
	return []Question{
		NewQuestion(11, "This year saw the coronation of the king who would divorce, behead, and eventually... die!", 1509),
		NewQuestion(7, "This year saw the restoration of the 'one hundred percent party animal', also known as the King of Bling.", 1660),
		NewQuestion(13, "This year saw the coronation of 'the fat one.'", 1820),
		NewQuestion(9, "This year, František and Stanislav flew sortie after sortie!", 1940),
		NewQuestion(8, "This year, a Welsh noble rose up against England! (Also, Baron Grey De Ruthen spread untrue things about him.)", 1400),
	}
}

// Validate checks that the catalog has something to play and that every
// club can be selected by name from the command line
func (c Catalog) Validate() error {
	if len(c.Clubs) == 0 {
		return fmt.Errorf("%w: no clubs", ErrInvalidCatalog)
	}
	if len(c.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidCatalog)
	}

	seen := make(map[string]bool)
	for i, club := range c.Clubs {
		if club.Name() == "" {
			return fmt.Errorf("%w: club %d has no name", ErrInvalidCatalog, i+1)
		}
		if strings.ContainsFunc(club.Name(), unicode.IsSpace) {
			return fmt.Errorf("%w: club name %q contains whitespace", ErrInvalidCatalog, club.Name())
		}
		key := strings.ToLower(club.Name())
		if seen[key] {
			return fmt.Errorf("%w: duplicate club %q", ErrInvalidCatalog, club.Name())
		}
		seen[key] = true
		if club.Range() <= 0 || club.Range() > MaxClubStat {
			return fmt.Errorf("%w: club %s has range %d, want 1..%d", ErrInvalidCatalog, club.Name(), club.Range(), MaxClubStat)
		}
		if club.Accuracy() < 0 || club.Accuracy() > MaxClubStat {
			return fmt.Errorf("%w: club %s has accuracy %d, want 0..%d", ErrInvalidCatalog, club.Name(), club.Accuracy(), MaxClubStat)
		}
	}

	for i, q := range c.Questions {
		if strings.TrimSpace(q.Prompt()) == "" {
			return fmt.Errorf("%w: question %d has no prompt", ErrInvalidCatalog, i+1)
		}
	}
	return nil
}

// FindClub looks up a club by name, ignoring case
func (c Catalog) FindClub(name string) (Club, bool) {
	for _, club := range c.Clubs {
		if strings.EqualFold(club.Name(), name) {
			return club, true
		}
	}
	return Club{}, false
}
