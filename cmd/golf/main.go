package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/napolitain/hotcold-golf/internal/console"
	"github.com/napolitain/hotcold-golf/internal/game"
	"github.com/napolitain/hotcold-golf/internal/loader"
	"github.com/napolitain/hotcold-golf/internal/models"
)

var (
	dataDir  string
	seed     uint64
	question int
	noColor  bool
	verbose  bool
	quiet    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "golf",
		Short: "Hot or Cold Golf - a history trivia game",
		Long: `Guess the year of a historical event by swinging clubs through time.
Start at year 0, pick a club with the range and accuracy you need, and
follow the hot/cold feedback until you land on the answer.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGame,
	}

	rootCmd.Flags().StringVarP(&dataDir, "data", "d", "", "Path to data directory with clubs.json and questions.json (default: built-in catalog)")
	rootCmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "Random seed (0 seeds from the clock)")
	rootCmd.Flags().IntVarP(&question, "question", "Q", 0, "Play this question first, 1-based (0 picks at random)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log swings and rounds to stderr")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the banner")

	return rootCmd
}

func runGame(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	if question < 0 {
		return fmt.Errorf("--question must be 1 or more, got %d", question)
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	catalog := models.DefaultCatalog()
	if dataDir != "" {
		var err error
		catalog, err = loader.LoadCatalog(dataDir)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		logger.Debug().Str("dir", dataDir).
			Int("clubs", len(catalog.Clubs)).
			Int("questions", len(catalog.Questions)).
			Msg("catalog loaded")
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug().Uint64("seed", seed).Msg("random source")
	src := rand.New(rand.NewPCG(seed, seed))

	course, err := game.NewCourse(catalog, src, logger)
	if err != nil {
		return err
	}

	session, err := course.Start(question - 1)
	if err != nil {
		return err
	}

	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), course, session, console.WithQuiet(quiet))
	return c.Run()
}
