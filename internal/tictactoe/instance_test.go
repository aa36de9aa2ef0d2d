package tictactoe

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/player"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/search"
)

type mockProvider struct {
	mock.Mock
}

func (that *mockProvider) NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error) {
	args := that.Called(ctx, board, mark)
	return args.Int(0), args.Error(1)
}

func (that *mockProvider) expect(mark entity.Mark, cells ...int) {
	for _, cell := range cells {
		that.On("NextMove", mock.Anything, mock.Anything, mark).Return(cell, nil).Once()
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInstance_Run(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("Hard AI versus hard AI ends in a draw", func(t *testing.T) {
		// Given: an AI only game on hard difficulty
		out := &bytes.Buffer{}
		c := console.New(strings.NewReader(""), out, nil)
		conf := entity.NewGameConfig(entity.AIVsAI, entity.Hard, 0, entity.EmptyCell)
		table := repository.NewResultTable()
		providers := player.NewProviders(c, search.New(), 1, conf.Difficulty, true)

		// When: running the game
		result := NewInstance(1, conf, providers, c, table, logger).Run(ctx)

		// Then: it is a draw after nine moves and the table holds it
		assert.Equal(t, entity.Result{GameID: 1, Outcome: entity.Outcome{Status: entity.StatusDraw}, Moves: 9}, result)
		assert.Equal(t, []entity.Result{result}, table.Sorted())

		printed := out.String()
		assert.Contains(t, printed, "[Game #1 started | mode: ai_vs_ai | difficulty: hard]")
		assert.Contains(t, printed, "[Game #1] AI (X) moves to 0")
		assert.Contains(t, printed, "[Game #1] Move #9:")
		assert.Contains(t, printed, "[Game #1] Game over: draw")
	})

	t.Run("Human versus human, X wins the top row", func(t *testing.T) {
		// Given: scripted human moves
		out := &bytes.Buffer{}
		c := console.New(strings.NewReader(""), out, nil)
		conf := entity.NewGameConfig(entity.HumanVsHuman, entity.Easy, 0, entity.EmptyCell)
		table := repository.NewResultTable()

		human := &mockProvider{}
		human.expect(entity.PlayerX, 0, 1, 2)
		human.expect(entity.PlayerO, 3, 4)
		providers := player.Providers{entity.ControllerHuman: human}

		// When: running the game
		result := NewInstance(2, conf, providers, c, table, logger).Run(ctx)

		// Then: X wins on move five
		assert.Equal(t, entity.Outcome{Status: entity.StatusWin, Winner: entity.PlayerX}, result.Outcome)
		assert.Equal(t, 5, result.Moves)
		assert.False(t, result.IsError())
		assert.Contains(t, out.String(), "[Game #2] Game over: X wins")
		assert.NotContains(t, out.String(), "AI (")
		human.AssertExpectations(t)
	})

	t.Run("Human versus AI uses the human provider only for the human mark", func(t *testing.T) {
		// Given: the human plays O
		c := console.New(strings.NewReader(""), &bytes.Buffer{}, nil)
		conf := entity.NewGameConfig(entity.HumanVsAI, entity.Hard, 0, entity.PlayerO)

		human := &mockProvider{}
		human.expect(entity.PlayerO, 3, 4)
		bot := &mockProvider{}
		bot.expect(entity.PlayerX, 0, 1, 2)
		providers := player.Providers{
			entity.ControllerHuman: human,
			entity.ControllerAI:    bot,
		}

		// When: running the game
		result := NewInstance(1, conf, providers, c, repository.NewResultTable(), logger).Run(ctx)

		// Then: X moves came from the bot and O moves from the human
		assert.Equal(t, entity.PlayerX, result.Outcome.Winner)
		human.AssertExpectations(t)
		bot.AssertExpectations(t)
	})

	t.Run("Illegal move fails only this game", func(t *testing.T) {
		// Given: a provider that plays an occupied cell
		out := &bytes.Buffer{}
		c := console.New(strings.NewReader(""), out, nil)
		conf := entity.NewGameConfig(entity.AIVsAI, entity.Hard, 0, entity.EmptyCell)
		table := repository.NewResultTable()

		bot := &mockProvider{}
		bot.expect(entity.PlayerX, 4)
		bot.expect(entity.PlayerO, 4)
		providers := player.Providers{entity.ControllerAI: bot}

		// When: running the game
		result := NewInstance(5, conf, providers, c, table, logger).Run(ctx)

		// Then: an error result is recorded
		require.True(t, result.IsError())
		assert.Equal(t, entity.StatusError, result.Outcome.Status)
		assert.Contains(t, result.Err, apperror.ErrCellOccupied.Error())
		assert.Equal(t, 1, result.Moves)
		assert.Equal(t, []entity.Result{result}, table.Sorted())
		assert.Contains(t, out.String(), "[Game #5] Error: provider returned an illegal move")
	})

	t.Run("Panicking provider is caught at the game boundary", func(t *testing.T) {
		c := console.New(strings.NewReader(""), &bytes.Buffer{}, nil)
		conf := entity.NewGameConfig(entity.AIVsAI, entity.Hard, 0, entity.EmptyCell)
		table := repository.NewResultTable()

		bot := &mockProvider{}
		bot.On("NextMove", mock.Anything, mock.Anything, entity.PlayerX).Panic("engine exploded").Once()
		providers := player.Providers{entity.ControllerAI: bot}

		result := NewInstance(7, conf, providers, c, table, logger).Run(ctx)

		require.True(t, result.IsError())
		assert.Contains(t, result.Err, apperror.ErrInstancePanic.Error())
		assert.Contains(t, result.Err, "engine exploded")
		assert.Equal(t, 1, table.Len())
	})

	t.Run("Missing provider is reported", func(t *testing.T) {
		c := console.New(strings.NewReader(""), &bytes.Buffer{}, nil)
		conf := entity.NewGameConfig(entity.HumanVsHuman, entity.Easy, 0, entity.EmptyCell)

		result := NewInstance(1, conf, player.Providers{}, c, repository.NewResultTable(), logger).Run(ctx)

		assert.Contains(t, result.Err, apperror.ErrUnknownController.Error())
	})

	t.Run("No available moves is announced", func(t *testing.T) {
		out := &bytes.Buffer{}
		c := console.New(strings.NewReader(""), out, nil)
		conf := entity.NewGameConfig(entity.AIVsAI, entity.Easy, 0, entity.EmptyCell)

		bot := &mockProvider{}
		bot.On("NextMove", mock.Anything, mock.Anything, entity.PlayerX).Return(0, apperror.ErrNoAvailableMoves).Once()

		result := NewInstance(1, conf, player.Providers{entity.ControllerAI: bot}, c, repository.NewResultTable(), logger).Run(ctx)

		assert.Contains(t, result.Err, apperror.ErrNoAvailableMoves.Error())
		assert.Contains(t, out.String(), "[Game #1] No available moves.")
	})

	t.Run("Cancellation during the delay interrupts the game", func(t *testing.T) {
		// Given: a long delay between moves
		c := console.New(strings.NewReader(""), &bytes.Buffer{}, nil)
		conf := entity.NewGameConfig(entity.AIVsAI, entity.Hard, time.Hour, entity.EmptyCell)
		table := repository.NewResultTable()
		providers := player.NewProviders(c, search.New(), 1, conf.Difficulty, false)

		cancelled, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		// When: the context ends while the game sleeps
		result := NewInstance(1, conf, providers, c, table, logger).Run(cancelled)

		// Then: the game is recorded as interrupted after the first move
		require.True(t, result.IsError())
		assert.Contains(t, result.Err, apperror.ErrInterrupted.Error())
		assert.Equal(t, 1, result.Moves)
		assert.Equal(t, 1, table.Len())
	})
}
