// Package console runs the line-oriented command loop for a round of golf.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/hotcold-golf/internal/game"
	"github.com/napolitain/hotcold-golf/internal/models"
)

// ErrInvalidInput is returned for unknown commands, unknown clubs and
// malformed arguments. It never ends the loop.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrInvalidYear    = fmt.Errorf("%w: invalid year", ErrInvalidInput)
	ErrClubNotFound   = fmt.Errorf("%w: club not found", ErrInvalidInput)
	ErrUnknownCommand = fmt.Errorf("%w: invalid command", ErrInvalidInput)
)

// Action tells the loop what to do after a command
type Action int

const (
	Continue Action = iota
	Quit
	HoleFinished
)

// Player-facing lines for recoverable errors
var errorMessages = []struct {
	err     error
	message string
}{
	{models.ErrRangeExceeded, "That target is beyond the range of this club!"},
	{ErrInvalidYear, "Invalid year!"},
	{ErrClubNotFound, "Club not found!"},
	{ErrUnknownCommand, "Invalid command!"},
}

// Colors
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	hotColor     = color.New(color.FgRed, color.Bold)
	warmColor    = color.New(color.FgYellow)
	coldColor    = color.New(color.FgCyan)
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Bold(true).
	Padding(0, 2)

// Console reads commands from in and writes everything the player sees to out
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	course  *game.Course
	session *game.Session
	quiet   bool
}

// Option configures a Console
type Option func(*Console)

// WithQuiet skips the banner
func WithQuiet(quiet bool) Option {
	return func(c *Console) {
		c.quiet = quiet
	}
}

// New creates a console playing session. Later rounds are dealt by course.
func New(in io.Reader, out io.Writer, course *game.Course, session *game.Session, opts ...Option) *Console {
	c := &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		course:  course,
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the round being played
func (c *Console) Session() *game.Session {
	return c.session
}

// Run reads commands until the player quits, declines another round or
// input ends. It only returns an error if reading input fails.
func (c *Console) Run() error {
	if !c.quiet {
		fmt.Fprintln(c.out, bannerStyle.Render("Hot or Cold Golf\nHistory trivia on the links"))
		fmt.Fprintln(c.out)
	}
	c.printHelp()
	c.printIntro()

	for {
		line, ok := c.readLine("Enter a command: ")
		if !ok {
			fmt.Fprintln(c.out, "Thanks for playing!")
			return c.in.Err()
		}

		action, err := c.Execute(line)
		if err != nil {
			c.printError(err)
			continue
		}

		switch action {
		case Quit:
			fmt.Fprintln(c.out, "Thanks for playing!")
			return nil
		case HoleFinished:
			if !c.playAgain() {
				fmt.Fprintln(c.out, "See you next time!")
				return c.in.Err()
			}
			c.session = c.course.Next()
			fmt.Fprintln(c.out)
			c.printIntro()
		}
	}
}

// Execute runs one command line against the current session
func (c *Console) Execute(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Continue, nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		c.printHelp()
	case "clubs":
		c.printClubs()
	case "question":
		c.printQuestion()
	case "year":
		fmt.Fprintln(c.out, "Current year:", c.session.Year())
	case "status":
		c.printStatus()
	case "target":
		if len(args) != 1 {
			return Continue, fmt.Errorf("%w: usage: target <year>", ErrInvalidYear)
		}
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return Continue, fmt.Errorf("%w: %q", ErrInvalidYear, args[0])
		}
		return c.target(year)
	case "club":
		if len(args) != 1 {
			return Continue, fmt.Errorf("%w: usage: club <club>", ErrClubNotFound)
		}
		club, ok := c.course.Catalog().FindClub(args[0])
		if !ok {
			return Continue, fmt.Errorf("%w: %q", ErrClubNotFound, args[0])
		}
		c.session.ChangeClub(club)
		fmt.Fprintln(c.out, "Changed club to", club.Name())
	case "quit":
		return Quit, nil
	default:
		return Continue, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return Continue, nil
}

func (c *Console) target(year int) (Action, error) {
	report, err := c.session.Guess(year)
	if err != nil {
		return Continue, err
	}

	if report.InBunker {
		infoColor.Fprintln(c.out, "Oh no, you're in a bunker! Use a sand wedge to escape!")
		infoColor.Fprintf(c.out, "You're stuck in the %s (%d-%d).\n", report.Bunker.Name, report.Bunker.From, report.Bunker.To)
	}
	fmt.Fprintln(c.out, "You swung with the", report.Club.Name(), "and landed in the year", report.Landing)

	if report.Won {
		successColor.Fprintln(c.out, "Correct! You guessed the year in", report.Guesses, "guesses!")
		fmt.Fprintln(c.out, "The par for this question was", report.Par)
		successColor.Fprintln(c.out, "You scored", report.Score, "points!")
		return HoleFinished, nil
	}

	tierColor(report.Tier).Fprintln(c.out, report.Tier.Phrase())
	return Continue, nil
}

func tierColor(t models.Tier) *color.Color {
	switch {
	case t.IsHot():
		return hotColor
	case t == models.Lukewarm:
		return warmColor
	default:
		return coldColor
	}
}

func (c *Console) printError(err error) {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			errorColor.Fprintln(c.out, m.message)
			return
		}
	}
	errorColor.Fprintf(c.out, "Error: %v\n", err)
}

func (c *Console) printHelp() {
	titleColor.Fprintln(c.out, "Welcome to Hot or Cold Golf!")
	fmt.Fprintln(c.out, "The goal of this game is to guess the year of a historical event.")
	fmt.Fprintln(c.out, "You start at year 0 and must use different clubs to get to the target year.")
	fmt.Fprintln(c.out, "Each club has a range and accuracy, and some clubs are better in certain situations.")
	fmt.Fprintln(c.out, "You can use the following commands:")
	fmt.Fprintln(c.out, "help: Print this help menu")
	fmt.Fprintln(c.out, "clubs: Print the clubs in your bag")
	fmt.Fprintln(c.out, "question: Print the current question")
	fmt.Fprintln(c.out, "year: Print the current year")
	fmt.Fprintln(c.out, "status: Print your club, year, guesses and par")
	fmt.Fprintln(c.out, "target <year>: Target a year")
	fmt.Fprintln(c.out, "club <club>: Change your current club (remember to include underscores!)")
	fmt.Fprintln(c.out, "quit: Quit the game")
	fmt.Fprintln(c.out)
}

func (c *Console) printClubs() {
	fmt.Fprintln(c.out, "Clubs in your bag:")

	table := tablewriter.NewTable(c.out,
		tablewriter.WithHeader([]string{"Club", "Range", "Accuracy", "Sand Wedge"}),
	)
	for _, club := range c.course.Catalog().Clubs {
		wedge := ""
		if club.IsSandWedge() {
			wedge = "yes"
		}
		_ = table.Append([]string{
			club.Name(),
			strconv.Itoa(club.Range()),
			strconv.Itoa(club.Accuracy()),
			wedge,
		})
	}
	_ = table.Render()
}

// printIntro shows what the player needs to tee off on a new hole
func (c *Console) printIntro() {
	s := c.session
	fmt.Fprintln(c.out, "Your current club is:", s.Club())
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Your question is:", s.Question().Prompt())
	fmt.Fprintln(c.out, "Par for this question is:", s.Question().Par())
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "The current year is:", s.Year())
	fmt.Fprintln(c.out)
	titleColor.Fprintln(c.out, "Good luck!")
}

func (c *Console) printQuestion() {
	fmt.Fprintln(c.out, c.session.Question().Prompt())
}

func (c *Console) printStatus() {
	s := c.session
	fmt.Fprintln(c.out, "Club:", s.Club())
	fmt.Fprintln(c.out, "Current year:", s.Year())
	fmt.Fprintln(c.out, "Guesses:", s.Guesses(), "Par:", s.Question().Par())
	if b, ok := s.Bunker(); ok {
		infoColor.Fprintf(c.out, "You are in a bunker: %s (%d-%d)\n", b.Name, b.From, b.To)
	}
}

func (c *Console) playAgain() bool {
	line, ok := c.readLine("Play again? (y/n) ")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
