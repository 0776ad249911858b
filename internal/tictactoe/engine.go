package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

// Reporter - receives a notification after every applied move and once when the game ends.
type Reporter interface {
	TurnPlayed(player Player, cell int, snapshot entity.Snapshot)
	GameOver(result Result, snapshot entity.Snapshot)
}

type noopReporter struct{}

func (noopReporter) TurnPlayed(Player, int, entity.Snapshot) {}

func (noopReporter) GameOver(Result, entity.Snapshot) {}

type Option func(engine *WarEngine)

// WithFirstMover - selects which mark opens the game. X opens by default.
func WithFirstMover(mark entity.Mark) Option {
	return func(engine *WarEngine) {
		engine.firstMover = mark
	}
}

func WithReporter(reporter Reporter) Option {
	return func(engine *WarEngine) {
		if reporter != nil {
			engine.reporter = reporter
		}
	}
}

// WarEngine - runs one game between two robots. It implements the rules of engagement,
// not the intelligence of the robots: every answer is checked against the live board and
// a robot breaking the move contract forfeits the game.
type WarEngine struct {
	logger   *slog.Logger
	reporter Reporter

	board   *Board
	playerX Player
	playerO Player

	firstMover entity.Mark
	active     Player
	state      State
	result     Result
}

func NewWarEngine(logger *slog.Logger, robotX, robotO entity.Robot, opts ...Option) (*WarEngine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	playerX, err := NewPlayer(entity.MarkX, robotX)
	if err != nil {
		return nil, fmt.Errorf("failed to create player X: %w", err)
	}

	playerO, err := NewPlayer(entity.MarkO, robotO)
	if err != nil {
		return nil, fmt.Errorf("failed to create player O: %w", err)
	}

	engine := &WarEngine{
		reporter:   noopReporter{},
		board:      NewBoard(),
		playerX:    playerX,
		playerO:    playerO,
		firstMover: entity.MarkX,
		state:      StateNotStarted,
	}

	for _, opt := range opts {
		opt(engine)
	}

	if !engine.firstMover.IsValid() {
		return nil, fmt.Errorf("%w: first mover %q", apperror.ErrInvalidConfiguration, string(engine.firstMover))
	}

	engine.active = engine.playerFor(engine.firstMover)
	engine.logger = logger.With("component", "war_engine", "x", playerX.Name(), "o", playerO.Name())

	return engine, nil
}

// Play - gives each player a turn in alternation until the game is over.
func (that *WarEngine) Play() Result {
	for !that.state.IsTerminal() {
		that.PlayTurn()
	}

	return that.result
}

// PlayTurn - asks the active robot for a single move and applies it.
// Once the game is over it returns the final result without consulting any robot.
func (that *WarEngine) PlayTurn() Result {
	if that.state.IsTerminal() {
		return that.result
	}

	that.state = StateInProgress

	player := that.active
	log := that.logger.With("player", player.String(), "move", that.board.MovesPlayed()+1)

	cell, err := that.decide(player)
	if err == nil {
		err = that.board.ValidateMove(cell)
	}

	if err != nil {
		log.Warn("robot disqualified", "cell", cell, "error", err)

		return that.finish(Result{
			Outcome: OutcomeDisqualified,
			Mark:    player.Mark(),
			Moves:   that.board.MovesPlayed(),
			Cause:   err,
		})
	}

	if err = that.board.Play(cell, player.Mark()); err != nil {
		// ValidateMove passed on the same board, only an invalid mark can get here.
		return that.finish(Result{
			Outcome: OutcomeDisqualified,
			Mark:    player.Mark(),
			Moves:   that.board.MovesPlayed(),
			Cause:   err,
		})
	}

	log.Debug("move played", "cell", cell)
	that.reporter.TurnPlayed(player, cell, that.board.Snapshot())

	switch {
	case that.board.HasWinningLine():
		return that.finish(Result{Outcome: OutcomeWin, Mark: player.Mark(), Moves: that.board.MovesPlayed()})
	case that.board.IsFull():
		return that.finish(Result{Outcome: OutcomeDraw, Mark: entity.NoMark, Moves: that.board.MovesPlayed()})
	default:
		that.active = that.playerFor(player.OpponentMark())
		return that.result
	}
}

func (that *WarEngine) State() State {
	return that.state
}

// Result - the final result, or a result with OutcomeNone while the game is running.
func (that *WarEngine) Result() Result {
	return that.result
}

func (that *WarEngine) Snapshot() entity.Snapshot {
	return that.board.Snapshot()
}

func (that *WarEngine) MovesPlayed() int {
	return that.board.MovesPlayed()
}

func (that *WarEngine) PlayerX() Player {
	return that.playerX
}

func (that *WarEngine) PlayerO() Player {
	return that.playerO
}

func (that *WarEngine) ActivePlayer() Player {
	return that.active
}

// decide - calls the robot with a fresh snapshot. A panicking robot is reported as an error.
func (that *WarEngine) decide(player Player) (cell int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", apperror.ErrRobotPanicked, r)
		}
	}()

	return player.Robot().Decide(that.board.Snapshot(), player.Mark()), nil
}

func (that *WarEngine) finish(result Result) Result {
	that.result = result
	that.state = result.state()

	that.logger.Debug("game over", "result", result.String(), "state", that.state.String())
	that.reporter.GameOver(result, that.board.Snapshot())

	return result
}

func (that *WarEngine) playerFor(mark entity.Mark) Player {
	if mark == entity.MarkO {
		return that.playerO
	}
	return that.playerX
}
