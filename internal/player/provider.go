package player

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/search"
)

// MoveProvider supplies the next cell for mark. The board is a copy owned by the caller.
type MoveProvider interface {
	NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error)
}

type searchEngine interface {
	BestMove(board entity.Board, ai, human entity.Mark, difficulty entity.Difficulty) (search.SearchResult, bool)
}

// Providers maps a controller tag to its provider for one game.
type Providers map[entity.Controller]MoveProvider

func NewProviders(c *console.Console, engine searchEngine, gameID int, difficulty entity.Difficulty, showIndices bool) Providers {
	return Providers{
		entity.ControllerHuman: NewHuman(c, gameID, showIndices),
		entity.ControllerAI:    NewBot(engine, difficulty),
	}
}
