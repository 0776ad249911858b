package robot_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
	"github.com/rocketscienceinc/tictactoe-wars/internal/robot"
	"github.com/rocketscienceinc/tictactoe-wars/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Run("Builds every known kind", func(t *testing.T) {
		for _, kind := range robot.Kinds() {
			// When: building a robot of the kind
			bot, err := robot.New(kind, "Ada", 1)

			// Then: the robot carries the requested name
			require.NoError(t, err, kind)
			assert.Equal(t, "Ada", bot.Name())
		}
	})

	t.Run("Unknown kind", func(t *testing.T) {
		// When: building an unknown robot
		_, err := robot.New("oracle", "Ada", 1)

		// Then: ErrUnknownRobot is returned
		require.ErrorIs(t, err, apperror.ErrUnknownRobot)
	})
}

func TestRandom_Decide(t *testing.T) {
	t.Run("Only picks free cells", func(t *testing.T) {
		// Given: a board with two free cells
		snapshot := entity.Snapshot{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkO, entity.NoMark, entity.MarkX,
			entity.MarkO, entity.NoMark, entity.MarkO,
		}
		bot := robot.NewRandom("Ada", 42)

		for i := 0; i < 50; i++ {
			// When: the robot decides
			cell := bot.Decide(snapshot, entity.MarkX)

			// Then: the cell is one of the free ones
			assert.Contains(t, []int{4, 7}, cell)
		}
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		// Given: two robots with the same seed
		first := robot.NewRandom("Ada", 7)
		second := robot.NewRandom("Grace", 7)

		// Then: they answer identically
		for i := 0; i < 20; i++ {
			assert.Equal(t, first.Decide(entity.Snapshot{}, entity.MarkX), second.Decide(entity.Snapshot{}, entity.MarkX))
		}
	})

	t.Run("Full board", func(t *testing.T) {
		// Given: a full board
		snapshot := entity.Snapshot{}
		for i := range snapshot {
			snapshot[i] = entity.MarkX
		}

		// Then: the robot has nothing legal to say
		assert.Equal(t, -1, robot.NewRandom("Ada", 1).Decide(snapshot, entity.MarkO))
	})
}

func TestSequential_Decide(t *testing.T) {
	// Given: a board with cells 0 and 1 taken
	snapshot := entity.Snapshot{entity.MarkX, entity.MarkO}

	// When: the robot decides
	cell := robot.NewSequential("Ada").Decide(snapshot, entity.MarkX)

	// Then: it takes the lowest free cell
	assert.Equal(t, 2, cell)
}

func TestMinimax_Decide(t *testing.T) {
	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the top row
		snapshot := entity.Snapshot{
			entity.MarkX, entity.MarkX, entity.NoMark,
			entity.NoMark, entity.MarkO, entity.NoMark,
		}

		// When: O decides
		cell := robot.NewMinimax("Ada").Decide(snapshot, entity.MarkO)

		// Then: O blocks on cell 2
		assert.Equal(t, 2, cell)
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: both sides have two in a row and O is to move
		snapshot := entity.Snapshot{
			entity.MarkX, entity.MarkX, entity.NoMark,
			entity.MarkO, entity.MarkO, entity.NoMark,
			entity.NoMark, entity.NoMark, entity.MarkX,
		}

		// When: O decides
		cell := robot.NewMinimax("Ada").Decide(snapshot, entity.MarkO)

		// Then: O completes the middle row
		assert.Equal(t, 5, cell)
	})

	t.Run("Perfect play draws", func(t *testing.T) {
		// Given: two minimax robots
		engine, err := tictactoe.NewWarEngine(discardLogger(), robot.NewMinimax("Ada"), robot.NewMinimax("Grace"))
		require.NoError(t, err)

		// When: the game is played out
		result := engine.Play()

		// Then: the game is a draw
		assert.Equal(t, tictactoe.OutcomeDraw, result.Outcome)
	})

	t.Run("Never loses against random play", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			// Given: minimax as O against a random X
			engine, err := tictactoe.NewWarEngine(discardLogger(), robot.NewRandom("Random", seed), robot.NewMinimax("Ada"))
			require.NoError(t, err)

			// When: the game is played out
			result := engine.Play()

			// Then: minimax either wins or draws
			winner, ok := result.Winner()
			assert.False(t, ok && winner == entity.MarkX, "seed %d: %s", seed, result)
			assert.NotEqual(t, tictactoe.OutcomeDisqualified, result.Outcome)
		}
	})
}
