package setup

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const maxDelay = time.Hour

var (
	modes = map[string]entity.Mode{
		"1": entity.HumanVsHuman,
		"2": entity.HumanVsAI,
		"3": entity.AIVsAI,
	}

	difficulties = map[string]entity.Difficulty{
		"1": entity.Easy,
		"2": entity.Medium,
		"3": entity.Hard,
	}
)

// Options is everything the operator chooses before a run.
type Options struct {
	Config entity.GameConfig
	Games  int
}

// Collect asks for the run options. Invalid answers are reported and asked again,
// only a cancelled context or closed input ends it early.
func Collect(ctx context.Context, c *console.Console) (Options, error) {
	c.Print("Choose game mode:", "1. Human vs human", "2. Human vs AI", "3. AI vs AI")
	mode, err := ask(ctx, c, "Enter mode number (1-3):", choice(modes, "Error: enter a number from 1 to 3."))
	if err != nil {
		return Options{}, err
	}

	c.Print("Choose difficulty:", "1. Easy", "2. Medium", "3. Hard")
	difficulty, err := ask(ctx, c, "Enter difficulty number (1-3):", choice(difficulties, "Error: enter a number from 1 to 3."))
	if err != nil {
		return Options{}, err
	}

	games, err := ask(ctx, c, "How many games to run in parallel:", parseGames)
	if err != nil {
		return Options{}, err
	}

	delay, err := ask(ctx, c, "Delay between moves (seconds):", parseDelay)
	if err != nil {
		return Options{}, err
	}

	humanMark := entity.PlayerX
	if mode == entity.HumanVsAI {
		if humanMark, err = ask(ctx, c, "Choose your mark (X or O):", parseMark); err != nil {
			return Options{}, err
		}
	}

	return Options{
		Config: entity.NewGameConfig(mode, difficulty, delay, humanMark),
		Games:  games,
	}, nil
}

// AskReplay returns true when the operator wants another run.
func AskReplay(ctx context.Context, c *console.Console) (bool, error) {
	for {
		answer, err := c.Ask(ctx, "Press Enter to exit, type 'yes' to play again or 'no' to quit:")
		if errors.Is(err, apperror.ErrLineTooLong) {
			c.Print("Unknown answer, try again.")
			continue
		}
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "", "no":
			return false, nil
		case "yes":
			return true, nil
		default:
			c.Print("Unknown answer, try again.")
		}
	}
}

// ask repeats the prompt until parse accepts the answer. parse returns the value
// or the notice to print before asking again. An overlong line is parsed as empty.
func ask[T any](ctx context.Context, c *console.Console, prompt string, parse func(answer string) (T, string)) (T, error) {
	for {
		answer, err := c.Ask(ctx, prompt)
		if err != nil && !errors.Is(err, apperror.ErrLineTooLong) {
			var zero T
			return zero, err
		}

		value, notice := parse(answer)
		if notice == "" {
			return value, nil
		}

		c.Print(notice)
	}
}

func choice[T any](options map[string]T, notice string) func(string) (T, string) {
	return func(answer string) (T, string) {
		if value, ok := options[answer]; ok {
			return value, ""
		}

		var zero T
		return zero, notice
	}
}

func parseGames(answer string) (int, string) {
	games, err := strconv.Atoi(answer)
	if err != nil || games < 1 {
		return 0, "Error: enter a positive number."
	}

	return games, ""
}

func parseDelay(answer string) (time.Duration, string) {
	seconds, err := strconv.ParseFloat(answer, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, "Error: enter a valid number."
	}

	if seconds < 0 {
		return 0, "Error: delay cannot be negative."
	}

	if seconds > maxDelay.Seconds() {
		return 0, "Error: delay cannot be longer than an hour."
	}

	return time.Duration(seconds * float64(time.Second)), ""
}

func parseMark(answer string) (entity.Mark, string) {
	mark := entity.Mark(strings.ToUpper(answer))
	if !mark.IsPlayer() {
		return entity.EmptyCell, "Error: enter X or O."
	}

	return mark, ""
}
