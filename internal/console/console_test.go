package console

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/napolitain/hotcold-golf/internal/game"
	"github.com/napolitain/hotcold-golf/internal/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// jitterSource makes every swing jitter by exactly its value
type jitterSource int

func (j jitterSource) IntN(n int) int {
	return (n-1)/2 + int(j)
}

var testCatalog = models.Catalog{
	Clubs: []models.Club{
		models.NewClub("Exact", 5000, 0, false),
		models.NewClub("Exact_Sand", 50, 0, true),
		models.NewClub("Putter", 10, 1, false),
	},
	Questions: []models.Question{
		models.NewQuestion(4, "When was Henry crowned?", 1509),
		models.NewQuestion(6, "When was the battle of Hastings?", 1066),
	},
}

func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	course, err := game.NewCourse(testCatalog, jitterSource(0), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCourse failed: %v", err)
	}
	session, err := course.Start(0)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, course, session, WithQuiet(true)), &out
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n--- output ---\n%s", w, out)
		}
	}
}

func TestRunWinAndStop(t *testing.T) {
	c, out := newTestConsole(t, "target 1509\nn\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertContains(t, out.String(),
		"Welcome to Hot or Cold Golf!",
		"Your current club is: Exact - (Range: 5000, Accuracy: 0)",
		"Your question is: When was Henry crowned?",
		"Par for this question is: 4",
		"The current year is: 0",
		"Good luck!",
		"You swung with the Exact and landed in the year 1509",
		"Correct! You guessed the year in 1 guesses!",
		"The par for this question was 4",
		"You scored 3 points!",
		"Play again? (y/n)",
		"See you next time!",
	)
	if c.Session().State() != game.Won {
		t.Errorf("expected won session, got %s", c.Session().State())
	}
}

func TestRunPlayAgainDealsNewQuestion(t *testing.T) {
	c, out := newTestConsole(t, "target 1509\ny\ntarget 1066\nno\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	assertContains(t, got,
		"Your question is: When was the battle of Hastings?",
		"Par for this question is: 6",
		"You swung with the Exact and landed in the year 1066",
		"The par for this question was 6",
		"You scored 5 points!",
	)
	if n := strings.Count(got, "Correct!"); n != 2 {
		t.Errorf("expected two holes finished, got %d", n)
	}
	if n := strings.Count(got, "Good luck!"); n != 2 {
		t.Errorf("expected an intro for each hole, got %d", n)
	}
	if c.Session().Question().Answer() != 1066 {
		t.Errorf("expected second round on Hastings, got %d", c.Session().Question().Answer())
	}
}

func TestRunQuitWithoutWinning(t *testing.T) {
	c, out := newTestConsole(t, "target 1400\nyear\nquit\ntarget 1509\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	assertContains(t, got,
		"You swung with the Exact and landed in the year 1400",
		"Freezing cold...",
		"Current year: 1400",
		"Thanks for playing!",
	)
	if strings.Contains(got, "Correct!") {
		t.Error("commands after quit should not run")
	}
	if c.Session().State() != game.InProgress {
		t.Errorf("expected in progress, got %s", c.Session().State())
	}
}

func TestRunEndOfInput(t *testing.T) {
	c, out := newTestConsole(t, "")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	assertContains(t, out.String(), "Thanks for playing!")
}

func TestInvalidInputKeepsLooping(t *testing.T) {
	c, out := newTestConsole(t, "target abc\ndance\nclub Nope\ntarget\nclub\ntarget 1509\nn\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	assertContains(t, got, "Correct! You guessed the year in 1 guesses!")
	if n := strings.Count(got, "Invalid year!"); n != 2 {
		t.Errorf("expected 2 invalid year lines, got %d", n)
	}
	if n := strings.Count(got, "Club not found!"); n != 2 {
		t.Errorf("expected 2 club not found lines, got %d", n)
	}
	if n := strings.Count(got, "Invalid command!"); n != 1 {
		t.Errorf("expected 1 invalid command line, got %d", n)
	}
}

func TestExecuteErrors(t *testing.T) {
	c, _ := newTestConsole(t, "")

	tests := []struct {
		line string
		want error
	}{
		{"target 12.5", ErrInvalidYear},
		{"target 1 2", ErrInvalidYear},
		{"target", ErrInvalidYear},
		{"TARGET 5", ErrUnknownCommand},
		{"club Sand Wedge", ErrClubNotFound},
		{"club Sand", ErrClubNotFound},
		{"swing", ErrUnknownCommand},
	}
	for _, tc := range tests {
		line := tc.line
		action, err := c.Execute(line)
		if !errors.Is(err, tc.want) || !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%q: expected %v, got %v", line, tc.want, err)
		}
		if action != Continue {
			t.Errorf("%q: expected to continue, got %v", line, action)
		}
	}
	if c.Session().Guesses() != 0 {
		t.Errorf("malformed targets should not count as guesses, got %d", c.Session().Guesses())
	}

	if action, err := c.Execute("   "); err != nil || action != Continue {
		t.Errorf("blank line: expected continue, got %v %v", action, err)
	}
}

func TestRangeExceededCountsGuess(t *testing.T) {
	c, out := newTestConsole(t, "club putter\ntarget 15\nyear\nstatus\nquit\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertContains(t, out.String(),
		"Changed club to Putter",
		"That target is beyond the range of this club!",
		"Current year: 0",
		"Guesses: 1 Par: 4",
	)
	if c.Session().Guesses() != 1 {
		t.Errorf("expected 1 guess, got %d", c.Session().Guesses())
	}
}

func TestExtremeTargetsAreOutOfRange(t *testing.T) {
	c, out := newTestConsole(t, "club putter\ntarget -9223372036854775808\ntarget 9223372036854775807\nyear\nquit\n")

	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	if n := strings.Count(got, "That target is beyond the range of this club!"); n != 2 {
		t.Errorf("expected 2 range failures, got %d\n%s", n, got)
	}
	if strings.Contains(got, "You swung with the Putter") {
		t.Error("no swing should land")
	}
	assertContains(t, got, "Current year: 0")
	if c.Session().Guesses() != 2 {
		t.Errorf("expected 2 guesses, got %d", c.Session().Guesses())
	}
}

func TestClubNameIsCaseInsensitive(t *testing.T) {
	c, _ := newTestConsole(t, "")

	if _, err := c.Execute("club exact_SAND"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Session().Club().Name(); got != "Exact_Sand" {
		t.Errorf("expected Exact_Sand, got %s", got)
	}
}

func TestBunkerWarningPrecedesSwing(t *testing.T) {
	c, out := newTestConsole(t, "")

	if _, err := c.Execute("target 1348"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	warning := strings.Index(got, "Oh no, you're in a bunker! Use a sand wedge to escape!")
	swing := strings.Index(got, "You swung with the Exact and landed in the year 1348")
	if warning < 0 || swing < 0 {
		t.Fatalf("missing bunker warning or swing line:\n%s", got)
	}
	if warning > swing {
		t.Error("bunker warning should be printed before the swing line")
	}
	assertContains(t, got, "You're stuck in the Black Death (1347-1351).")
	if !c.Session().InBunker() {
		t.Error("session should be in a bunker")
	}

	out.Reset()
	if _, err := c.Execute("status"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out.String(), "You are in a bunker: Black Death (1347-1351)")
}

func TestClubsListing(t *testing.T) {
	c, out := newTestConsole(t, "")

	if _, err := c.Execute("clubs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out.String(), "Clubs in your bag:", "Exact", "Putter", "5000")
}

func TestQuitAction(t *testing.T) {
	c, _ := newTestConsole(t, "")

	action, err := c.Execute("quit")
	if err != nil || action != Quit {
		t.Errorf("expected Quit, got %v %v", action, err)
	}
}
