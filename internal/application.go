package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-wars/internal/config"
	"github.com/rocketscienceinc/tictactoe-wars/internal/console"
	"github.com/rocketscienceinc/tictactoe-wars/internal/repository"
	"github.com/rocketscienceinc/tictactoe-wars/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-wars/internal/robot"
	"github.com/rocketscienceinc/tictactoe-wars/internal/usecase"
)

// RunApp - runs the application.
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

	scoreboard, closeScoreboard, err := openScoreboard(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeScoreboard(); err != nil {
			log.Error("could not close scoreboard storage", "error", err)
		}
	}()

	return Run(ctx, logger, conf, scoreboard, os.Stdout)
}

// Run - builds both robots from the config, plays the tournament and prints the standings to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, scoreboard repository.ScoreboardRepository, out io.Writer) error {
	log := logger.With("component", "app")

	robotX, err := robot.New(conf.RobotX.Kind, conf.RobotX.Name, conf.Seed)
	if err != nil {
		return fmt.Errorf("could not create robot X: %w", err)
	}

	robotO, err := robot.New(conf.RobotO.Kind, conf.RobotO.Name, conf.Seed+1)
	if err != nil {
		return fmt.Errorf("could not create robot O: %w", err)
	}

	opts := []usecase.TournamentOption{usecase.WithFirstMover(conf.FirstMoverMark())}
	if conf.RenderBoard {
		opts = append(opts, usecase.WithGameReporter(console.NewReporter(out)))
	}

	tournament := usecase.NewTournament(logger, scoreboard, opts...)

	log.Info("Starting tournament",
		"x", conf.RobotX.Name,
		"o", conf.RobotO.Name,
		"rounds", conf.Rounds,
		"scoreboard", conf.Scoreboard.Driver,
	)

	summary, err := tournament.Run(ctx, robotX, robotO, conf.Rounds)
	if err != nil {
		if usecase.IsInterrupted(err) {
			log.Info("Tournament canceled", "played", len(summary.Games))
			return nil
		}
		return fmt.Errorf("tournament failed: %w", err)
	}

	if err = console.PrintStandings(out, summary.Standings); err != nil {
		return fmt.Errorf("could not print standings: %w", err)
	}

	return nil
}

func openScoreboard(ctx context.Context, conf *config.Config) (repository.ScoreboardRepository, func() error, error) {
	if conf.Scoreboard.Driver != config.DriverRedis {
		return repository.NewMemoryScoreboardRepository(), func() error { return nil }, nil
	}

	redisClient, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewScoreboardRepository(redisClient, conf.Scoreboard.KeyPrefix), redisClient.Close, nil
}
