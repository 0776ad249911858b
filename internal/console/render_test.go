package console

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
	"github.com/rocketscienceinc/tictactoe-wars/internal/robot"
	"github.com/rocketscienceinc/tictactoe-wars/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		expected := "" +
			"   │   │   \n" +
			"───┼───┼───\n" +
			"   │   │   \n" +
			"───┼───┼───\n" +
			"   │   │   \n"

		assert.Equal(t, expected, Render(entity.Snapshot{}))
	})

	t.Run("Played board", func(t *testing.T) {
		// Given: a snapshot with a few marks
		snapshot := entity.Snapshot{
			entity.MarkX, entity.MarkO, entity.NoMark,
			entity.NoMark, entity.MarkX, entity.NoMark,
			entity.NoMark, entity.NoMark, entity.MarkO,
		}

		expected := "" +
			" X │ O │   \n" +
			"───┼───┼───\n" +
			"   │ X │   \n" +
			"───┼───┼───\n" +
			"   │   │ O \n"

		// Then: marks land in row-major order
		assert.Equal(t, expected, Render(snapshot))
	})
}

func TestReporter(t *testing.T) {
	// Given: an engine reporting to a buffer
	var out bytes.Buffer
	engine, err := tictactoe.NewWarEngine(
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
		robot.NewSequential("Ada"),
		robot.NewSequential("Grace"),
		tictactoe.WithReporter(NewReporter(&out)),
	)
	require.NoError(t, err)

	// When: the game is played out
	engine.Play()

	// Then: every move and the final result are printed
	text := out.String()
	assert.Contains(t, text, "Ada [X] plays 0\n")
	assert.Contains(t, text, "Grace [O] plays 1\n")
	assert.Contains(t, text, "Result: X wins after 7 moves\n")
}

func TestPrintStandings(t *testing.T) {
	// Given: two standings, the second one ahead on points
	var out bytes.Buffer
	standings := []*entity.Standing{
		{Name: "Grace", Wins: 1, Losses: 2},
		{Name: "Ada", Wins: 2, Losses: 1, Disqualifications: 1},
	}

	// When: printing them
	err := PrintStandings(&out, standings)

	// Then: the leader comes first and the input order is kept
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ROBOT"))
	assert.Equal(t, []string{"Ada", "3", "2", "0", "1", "1", "4"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Grace", "3", "1", "0", "2", "0", "2"}, strings.Fields(lines[2]))
	assert.Equal(t, "Grace", standings[0].Name)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintStandings_WriteError(t *testing.T) {
	// Given: a writer that always fails
	standings := []*entity.Standing{{Name: "Ada", Wins: 1}}

	// When: printing to it
	err := PrintStandings(brokenWriter{}, standings)

	// Then: the write error is returned
	require.ErrorContains(t, err, "disk full")
}
