package robot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

const winScore = 10

type memoKey struct {
	snapshot entity.Snapshot
	mark     entity.Mark
}

// Minimax - never loses. Wins as fast as possible and, when losing, loses as late as possible.
// Ties between equally good cells go to the lowest cell.
//
// Scores are cached per position, so a single instance must not be shared by concurrent games.
type Minimax struct {
	name string
	memo map[memoKey]int
}

func NewMinimax(name string) *Minimax {
	return &Minimax{
		name: name,
		memo: make(map[memoKey]int),
	}
}

func (that *Minimax) Name() string {
	return that.name
}

func (that *Minimax) Decide(snapshot entity.Snapshot, mark entity.Mark) int {
	bestCell, bestScore := -1, math.MinInt

	for _, cell := range snapshot.EmptyCells() {
		next := snapshot
		next[cell] = mark

		score := -that.negamax(next, mark.Opponent())
		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell
}

// negamax - scores the position for the side about to move.
func (that *Minimax) negamax(snapshot entity.Snapshot, mark entity.Mark) int {
	key := memoKey{snapshot: snapshot, mark: mark}
	if score, ok := that.memo[key]; ok {
		return score
	}

	score := that.evaluate(snapshot, mark)
	that.memo[key] = score

	return score
}

func (that *Minimax) evaluate(snapshot entity.Snapshot, mark entity.Mark) int {
	// the side that just moved completed a line
	if _, ok := snapshot.WinningMark(); ok {
		return snapshot.MovesPlayed() - winScore
	}

	emptyCells := snapshot.EmptyCells()
	if len(emptyCells) == 0 {
		return 0
	}

	best := math.MinInt
	for _, cell := range emptyCells {
		next := snapshot
		next[cell] = mark

		if score := -that.negamax(next, mark.Opponent()); score > best {
			best = score
		}
	}

	return best
}
