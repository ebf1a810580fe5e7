package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-core/internal/bot"
	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/console"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/service"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/redis"
)

// RunApp - runs an interactive game on the given terminal streams.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	difficulty, human, err := gameChoices(conf)
	if err != nil {
		return err
	}

	gamePlay, closeFn, err := buildService(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeFn()

	log.Info("Starting game", "difficulty", difficulty, "human", human, "seed", conf.Game.Seed)

	if err = console.New(logger, gamePlay, in, out).Run(ctx, difficulty, human); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// RunSimulation - plays opts.Rounds engine-versus-engine rounds.
func RunSimulation(ctx context.Context, logger *slog.Logger, conf *config.Config, opts service.SimulateOptions) (service.Tally, error) {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	gamePlay, closeFn, err := buildService(ctx, logger, conf)
	if err != nil {
		return service.Tally{}, err
	}
	defer closeFn()

	log.Info("Starting simulation", "rounds", opts.Rounds,
		"aiDifficulty", opts.AIDifficulty, "opponentDifficulty", opts.OpponentDifficulty, "seed", conf.Game.Seed)

	tally, err := gamePlay.Simulate(ctx, opts)
	if err != nil {
		return tally, fmt.Errorf("simulation failed: %w", err)
	}

	return tally, nil
}

// NewLogger builds the JSON (or text) slog logger described by conf.
func NewLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if conf.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func buildService(ctx context.Context, logger *slog.Logger, conf *config.Config) (service.GamePlayService, func(), error) {
	notifiers := service.Notifiers{service.NewLogNotifier(logger)}
	closeFn := func() {}

	if conf.Redis.Enabled {
		publisher, err := redis.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
		}

		notifiers = append(notifiers, publisher)
		closeFn = func() {
			if err = publisher.Close(); err != nil {
				logger.Error("could not close redis publisher", "error", err)
			}
		}
	}

	engine := bot.NewWithSeed(conf.Game.Seed)

	return service.NewGamePlayService(logger, engine, notifiers), closeFn, nil
}

func gameChoices(conf *config.Config) (entity.Difficulty, entity.Mark, error) {
	difficulty, err := entity.ParseDifficulty(conf.Game.Difficulty)
	if err != nil {
		return "", entity.EmptyCell, fmt.Errorf("invalid game settings: %w", err)
	}

	human, err := entity.ParseMark(conf.Game.HumanMark)
	if err != nil {
		return "", entity.EmptyCell, fmt.Errorf("invalid game settings: %w", err)
	}

	return difficulty, human, nil
}

func withSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
