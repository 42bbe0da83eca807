package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/napolitain/hotcold-golf/internal/models"
)

// Course deals holes from a catalog. Every hole starts with the first club
// in the bag.
type Course struct {
	catalog models.Catalog
	src     models.Source
	log     zerolog.Logger
	current int
}

// NewCourse validates the catalog and prepares a course. src is shared by
// question selection and every session's swings.
func NewCourse(catalog models.Catalog, src models.Source, log zerolog.Logger) (*Course, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &Course{catalog: catalog, src: src, log: log, current: -1}, nil
}

// Catalog returns the clubs and questions in play
func (c *Course) Catalog() models.Catalog {
	return c.catalog
}

// Start tees off on the question at index, or on a random one when index is negative
func (c *Course) Start(index int) (*Session, error) {
	if index < 0 {
		index = c.src.IntN(len(c.catalog.Questions))
	}
	if index >= len(c.catalog.Questions) {
		return nil, fmt.Errorf("question %d out of range: %d questions available", index+1, len(c.catalog.Questions))
	}
	return c.tee(index), nil
}

// Next tees off on a random question other than the last one played,
// when the pool allows it
func (c *Course) Next() *Session {
	n := len(c.catalog.Questions)
	if c.current < 0 || n == 1 {
		return c.tee(c.src.IntN(n))
	}
	index := c.src.IntN(n - 1)
	if index >= c.current {
		index++
	}
	return c.tee(index)
}

func (c *Course) tee(index int) *Session {
	c.current = index
	question := c.catalog.Questions[index]
	club := c.catalog.Clubs[0]

	s := NewSession(question, club, c.src, WithLogger(c.log))
	c.log.Debug().
		Str("session", s.ID()).
		Int("question", index+1).
		Int("par", question.Par()).
		Str("club", club.Name()).
		Msg("tee off")
	return s
}
