package robot

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

// Random - plays any free cell.
type Random struct {
	name string
	rnd  *rand.Rand
}

func NewRandom(name string, seed int64) *Random {
	return &Random{
		name: name,
		rnd:  rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *Random) Name() string {
	return that.name
}

func (that *Random) Decide(snapshot entity.Snapshot, _ entity.Mark) int {
	availableCells := snapshot.EmptyCells()
	if len(availableCells) == 0 {
		return -1
	}

	return availableCells[that.rnd.Intn(len(availableCells))]
}

// Sequential - plays the lowest free cell.
type Sequential struct {
	name string
}

func NewSequential(name string) *Sequential {
	return &Sequential{name: name}
}

func (that *Sequential) Name() string {
	return that.name
}

func (that *Sequential) Decide(snapshot entity.Snapshot, _ entity.Mark) int {
	availableCells := snapshot.EmptyCells()
	if len(availableCells) == 0 {
		return -1
	}

	return availableCells[0]
}
