package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arena/internal/search"
	"github.com/rocketscienceinc/tictactoe-arena/internal/setup"
	transport "github.com/rocketscienceinc/tictactoe-arena/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-arena/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

type summaryPublisher interface {
	Publish(ctx context.Context, summary *entity.Summary) error
}

// RunApp - runs the application on the process console until the operator quits or interrupts it.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run plays setup, games and replay rounds on the given input and output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	c := console.New(in, out, console.NewPainter(conf.Console.Color))

	var publisher summaryPublisher
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher = transport.NewSummaryPublisher(redisStorage, conf.Redis.Channel)
	}

	arena := usecase.NewArena(logger, c, search.New(), publisher, usecase.ArenaSettings{
		MaxParallel: conf.MaxParallel,
		ShowIndices: !conf.Console.HideIndices,
	})

	for {
		options, err := setup.Collect(ctx, c)
		if err != nil {
			return stop(c, log, err)
		}

		if _, err = arena.Run(ctx, options.Config, options.Games); err != nil {
			return fmt.Errorf("failed to run games: %w", err)
		}

		if ctx.Err() != nil {
			return stop(c, log, ctx.Err())
		}

		c.Print("", "=== All games finished ===")

		replay, err := setup.AskReplay(ctx, c)
		if err != nil {
			return stop(c, log, err)
		}

		if !replay {
			c.Print("Exiting...")
			return nil
		}

		c.Print("Restarting games...")
	}
}

// stop turns an interrupt or the end of input into a clean exit.
func stop(c *console.Console, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		c.Print("", "Program interrupted by user.")
		log.Info("interrupted by user")
		return nil
	case errors.Is(err, apperror.ErrInputClosed):
		c.Print("", "Input closed. Exiting...")
		log.Info("input closed")
		return nil
	default:
		return err
	}
}
