package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/player"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/search"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const publishTimeout = 5 * time.Second

type searchEngine interface {
	BestMove(board entity.Board, ai, human entity.Mark, difficulty entity.Difficulty) (search.SearchResult, bool)
}

type summaryPublisher interface {
	Publish(ctx context.Context, summary *entity.Summary) error
}

type ArenaSettings struct {
	// MaxParallel caps the number of games played at once, 0 means no cap.
	MaxParallel int
	ShowIndices bool
}

// Arena runs independent games concurrently and reports their results.
type Arena struct {
	logger    *slog.Logger
	console   *console.Console
	engine    searchEngine
	publisher summaryPublisher
	settings  ArenaSettings
}

// NewArena - publisher may be nil when summaries are not published.
func NewArena(logger *slog.Logger, c *console.Console, engine searchEngine, publisher summaryPublisher, settings ArenaSettings) *Arena {
	return &Arena{
		logger:    logger,
		console:   c,
		engine:    engine,
		publisher: publisher,
		settings:  settings,
	}
}

// Run plays games games with ids 1..games and returns once every one of them finished.
// A failed game never stops the others, it shows up as an error result.
func (that *Arena) Run(ctx context.Context, conf entity.GameConfig, games int) (*entity.Summary, error) {
	if games < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidGameCount, games)
	}

	runID := uuid.NewString()
	log := that.logger.With("component", "arena", "run_id", runID)
	log.Info("starting games", "games", games, "mode", conf.Mode, "difficulty", conf.Difficulty)

	startedAt := time.Now()
	results := repository.NewResultTable()

	var group errgroup.Group
	if that.settings.MaxParallel > 0 {
		group.SetLimit(that.settings.MaxParallel)
	}

	for id := 1; id <= games; id++ {
		providers := player.NewProviders(that.console, that.engine, id, conf.Difficulty, that.settings.ShowIndices)
		instance := tictactoe.NewInstance(id, conf, providers, that.console, results, that.logger)

		group.Go(func() error {
			if result := instance.Run(ctx); result.IsError() {
				return fmt.Errorf("game %d: %s", id, result.Err)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Warn("some games failed", "first_error", err)
	}

	summary := entity.NewSummary(runID, conf, games, results.Sorted(), startedAt, time.Now())
	that.console.Print(summary.Lines()...)

	log.Info("games finished",
		"x_wins", summary.XWins,
		"o_wins", summary.OWins,
		"draws", summary.Draws,
		"errors", summary.Errors,
		"duration", summary.FinishedAt.Sub(summary.StartedAt),
	)

	that.publish(ctx, log, summary)

	return summary, nil
}

// publish still runs after an interrupt so partial results get out.
func (that *Arena) publish(ctx context.Context, log *slog.Logger, summary *entity.Summary) {
	if that.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := that.publisher.Publish(ctx, summary); err != nil {
		log.Error("failed to publish summary", "error", err)
	}
}
