package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
	"github.com/rocketscienceinc/tictactoe-wars/internal/tictactoe"
)

type scoreboardRepo interface {
	Record(ctx context.Context, name string, tally entity.Tally) error
	GetByName(ctx context.Context, name string) (*entity.Standing, error)
}

// GameRecord - what happened in one tournament game.
type GameRecord struct {
	ID     string
	Round  int
	RobotX string
	RobotO string
	Result tictactoe.Result
}

// Summary - the games of one run. Standings are read back from the scoreboard, so with a
// persistent scoreboard they are lifetime totals that include earlier runs.
type Summary struct {
	Games     []GameRecord
	Standings []*entity.Standing
}

type TournamentOption func(tournament *Tournament)

// WithGameReporter - attaches a reporter to every game of the tournament.
func WithGameReporter(reporter tictactoe.Reporter) TournamentOption {
	return func(tournament *Tournament) {
		tournament.reporter = reporter
	}
}

func WithFirstMover(mark entity.Mark) TournamentOption {
	return func(tournament *Tournament) {
		tournament.firstMover = mark
	}
}

// Tournament - plays a series of games between two robots, swapping marks every round,
// and keeps their standings on the scoreboard.
type Tournament struct {
	logger     *slog.Logger
	scoreboard scoreboardRepo

	reporter   tictactoe.Reporter
	firstMover entity.Mark
	newGameID  func() string
}

func NewTournament(logger *slog.Logger, scoreboard scoreboardRepo, opts ...TournamentOption) *Tournament {
	tournament := &Tournament{
		logger:     logger,
		scoreboard: scoreboard,
		firstMover: entity.MarkX,
		newGameID:  uuid.NewString,
	}

	for _, opt := range opts {
		opt(tournament)
	}

	return tournament
}

// Run - plays rounds games. robotA plays X in odd rounds and O in even ones.
// Cancelling ctx stops the tournament between two games; the games played so far are returned.
func (that *Tournament) Run(ctx context.Context, robotA, robotB entity.Robot, rounds int) (*Summary, error) {
	log := that.logger.With("component", "tournament", "rounds", rounds)

	if rounds < 1 {
		return nil, fmt.Errorf("%w: rounds must be positive, got %d", apperror.ErrInvalidConfiguration, rounds)
	}

	summary := &Summary{}

	if err := checkEntrants(robotA, robotB); err != nil {
		return summary, err
	}

	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			log.Info("tournament interrupted", "played", len(summary.Games))
			return summary, fmt.Errorf("tournament stopped after %d games: %w", len(summary.Games), err)
		}

		robotX, robotO := robotA, robotB
		if round%2 == 0 {
			robotX, robotO = robotB, robotA
		}

		record, err := that.playGame(ctx, round, robotX, robotO)
		if err != nil {
			return summary, fmt.Errorf("failed to play round %d: %w", round, err)
		}

		summary.Games = append(summary.Games, record)
	}

	standings, err := that.standings(ctx, robotA, robotB)
	if err != nil {
		return summary, err
	}
	summary.Standings = standings

	log.Info("tournament finished", "played", len(summary.Games))

	return summary, nil
}

// checkEntrants - both robots must be valid players and must not share a name,
// the scoreboard keeps one standing per name.
func checkEntrants(robotA, robotB entity.Robot) error {
	playerA, err := tictactoe.NewPlayer(entity.MarkX, robotA)
	if err != nil {
		return fmt.Errorf("invalid first robot: %w", err)
	}

	playerB, err := tictactoe.NewPlayer(entity.MarkO, robotB)
	if err != nil {
		return fmt.Errorf("invalid second robot: %w", err)
	}

	if strings.TrimSpace(playerA.Name()) == strings.TrimSpace(playerB.Name()) {
		return fmt.Errorf("%w: both robots are named %q", apperror.ErrInvalidConfiguration, playerA.Name())
	}

	return nil
}

func (that *Tournament) playGame(ctx context.Context, round int, robotX, robotO entity.Robot) (GameRecord, error) {
	opts := []tictactoe.Option{tictactoe.WithFirstMover(that.firstMover)}
	if that.reporter != nil {
		opts = append(opts, tictactoe.WithReporter(that.reporter))
	}

	engine, err := tictactoe.NewWarEngine(that.logger, robotX, robotO, opts...)
	if err != nil {
		return GameRecord{}, fmt.Errorf("failed to create war engine: %w", err)
	}

	record := GameRecord{
		ID:     that.newGameID(),
		Round:  round,
		RobotX: engine.PlayerX().Name(),
		RobotO: engine.PlayerO().Name(),
	}

	record.Result = engine.Play()

	that.logger.Info("game finished",
		"game_id", record.ID,
		"round", round,
		"x", record.RobotX,
		"o", record.RobotO,
		"outcome", record.Result.Outcome.String(),
		"result", record.Result.String(),
	)

	tallyX, tallyO := tallies(record.Result)
	if err = that.scoreboard.Record(ctx, record.RobotX, tallyX); err != nil {
		return record, fmt.Errorf("failed to record X tally: %w", err)
	}
	if err = that.scoreboard.Record(ctx, record.RobotO, tallyO); err != nil {
		return record, fmt.Errorf("failed to record O tally: %w", err)
	}

	return record, nil
}

func (that *Tournament) standings(ctx context.Context, robots ...entity.Robot) ([]*entity.Standing, error) {
	standings := make([]*entity.Standing, 0, len(robots))

	for _, robot := range robots {
		name := robot.Name()
		standing, err := that.scoreboard.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get standing of %s: %w", name, err)
		}
		standings = append(standings, standing)
	}

	return standings, nil
}

// tallies - converts a game result into scoreboard increments for X and O.
func tallies(result tictactoe.Result) (entity.Tally, entity.Tally) {
	var tallyX, tallyO entity.Tally

	switch result.Outcome {
	case tictactoe.OutcomeDraw:
		tallyX.Draws, tallyO.Draws = 1, 1
	case tictactoe.OutcomeWin, tictactoe.OutcomeDisqualified:
		winner, _ := result.Winner()
		if winner == entity.MarkX {
			tallyX.Wins, tallyO.Losses = 1, 1
		} else {
			tallyO.Wins, tallyX.Losses = 1, 1
		}

		if result.Outcome == tictactoe.OutcomeDisqualified {
			if result.Mark == entity.MarkX {
				tallyX.Disqualifications = 1
			} else {
				tallyO.Disqualifications = 1
			}
		}
	}

	return tallyX, tallyO
}

// IsInterrupted - reports whether err comes from a cancelled tournament.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
