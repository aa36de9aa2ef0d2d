package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/player"
)

type resultSaver interface {
	Save(result entity.Result) error
}

// Instance plays one game from an empty board to a final state.
// The board is private to the instance, providers only get copies of it.
type Instance struct {
	id   int
	conf entity.GameConfig

	board entity.Board
	mover entity.Mark
	moves int

	providers player.Providers
	console   *console.Console
	results   resultSaver
	logger    *slog.Logger
}

func NewInstance(
	id int,
	conf entity.GameConfig,
	providers player.Providers,
	c *console.Console,
	results resultSaver,
	logger *slog.Logger,
) *Instance {
	return &Instance{
		id:        id,
		conf:      conf,
		mover:     entity.PlayerX,
		providers: providers,
		console:   c,
		results:   results,
		logger:    logger.With("component", "game", "game_id", id),
	}
}

// Run plays the game and saves its result. Failures, panics included, end this game only
// and are saved as an error result.
func (that *Instance) Run(ctx context.Context) (result entity.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = that.fail(fmt.Errorf("%w: %v", apperror.ErrInstancePanic, r))
		}
	}()

	that.console.Print("", fmt.Sprintf("[Game #%d started | mode: %s | difficulty: %s]", that.id, that.conf.Mode, that.conf.Difficulty))

	outcome, err := that.play(ctx)
	if err != nil {
		return that.fail(err)
	}

	that.console.Print(
		that.tag("Game over: "+outcome.String()),
		that.tag("Final board:"),
		that.console.Painter().Board(that.board, false),
	)

	result = entity.Result{
		GameID:  that.id,
		Outcome: outcome,
		Moves:   that.moves,
	}
	that.save(result)

	that.logger.Info("game finished", "outcome", outcome.String(), "moves", that.moves)

	return result
}

func (that *Instance) play(ctx context.Context) (entity.Outcome, error) {
	for {
		cell, err := that.nextMove(ctx)
		if err != nil {
			return entity.Outcome{}, err
		}

		if err = that.board.Apply(cell, that.mover); err != nil {
			return entity.Outcome{}, fmt.Errorf("provider returned an illegal move: %w", err)
		}
		that.moves++

		that.logger.Debug("move applied", "mark", that.mover, "cell", cell, "move", that.moves)
		that.console.Print(
			that.tag(fmt.Sprintf("Move #%d: %s at %d", that.moves, that.mover, cell)),
			that.console.Painter().Board(that.board, false),
		)

		if outcome := that.board.Winner(); outcome.IsTerminal() {
			return outcome, nil
		}

		that.mover = that.mover.Opponent()

		if err = that.pause(ctx); err != nil {
			return entity.Outcome{}, err
		}
	}
}

func (that *Instance) nextMove(ctx context.Context) (int, error) {
	controller := that.conf.Controller(that.mover)

	provider, ok := that.providers[controller]
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperror.ErrUnknownController, controller)
	}

	cell, err := provider.NextMove(ctx, that.board, that.mover)
	if errors.Is(err, apperror.ErrNoAvailableMoves) {
		that.console.Print(that.tag("No available moves."))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get move for %s: %w", that.mover, err)
	}

	if controller == entity.ControllerAI {
		that.console.Print(that.tag(fmt.Sprintf("AI (%s) moves to %d", that.mover, cell)))
	}

	return cell, nil
}

func (that *Instance) pause(ctx context.Context) error {
	if that.conf.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.conf.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("pause between moves: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (that *Instance) fail(err error) entity.Result {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", apperror.ErrInterrupted, err)
	}

	that.logger.Error("game failed", "error", err, "moves", that.moves)
	that.console.Print(that.tag("Error: " + err.Error()))

	result := entity.NewErrorResult(that.id, that.moves, err)
	that.save(result)

	return result
}

func (that *Instance) save(result entity.Result) {
	if err := that.results.Save(result); err != nil {
		that.logger.Error("failed to save result", "error", err)
	}
}

func (that *Instance) tag(msg string) string {
	return fmt.Sprintf("[Game #%d] %s", that.id, msg)
}
