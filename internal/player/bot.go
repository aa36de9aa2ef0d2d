package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// Bot asks the search engine for a move. It never waits for input.
type Bot struct {
	engine     searchEngine
	difficulty entity.Difficulty
}

func NewBot(engine searchEngine, difficulty entity.Difficulty) *Bot {
	return &Bot{
		engine:     engine,
		difficulty: difficulty,
	}
}

func (that *Bot) NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("bot move: %w", err)
	}

	result, ok := that.engine.BestMove(board, mark, mark.Opponent(), that.difficulty)
	if !ok {
		return 0, apperror.ErrNoAvailableMoves
	}

	return result.Move, nil
}
