package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateWon
	StateDraw
	StateDisqualified
)

func (that State) String() string {
	switch that {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	case StateDisqualified:
		return "disqualified"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

func (that State) IsTerminal() bool {
	return that == StateWon || that == StateDraw || that == StateDisqualified
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeDraw
	OutcomeDisqualified
)

func (that Outcome) String() string {
	switch that {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	case OutcomeDisqualified:
		return "disqualified"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// Result - the terminal result of a game.
//
// Mark is the winner for OutcomeWin and the offending side for OutcomeDisqualified.
// Cause holds the reason a robot was disqualified.
type Result struct {
	Outcome Outcome
	Mark    entity.Mark
	Moves   int
	Cause   error
}

func (that Result) IsTerminal() bool {
	return that.Outcome != OutcomeNone
}

// Winner - returns the mark that won the game, if any. A disqualification hands the win to the opponent.
func (that Result) Winner() (entity.Mark, bool) {
	switch that.Outcome {
	case OutcomeWin:
		return that.Mark, true
	case OutcomeDisqualified:
		return that.Mark.Opponent(), true
	default:
		return entity.NoMark, false
	}
}

func (that Result) String() string {
	switch that.Outcome {
	case OutcomeWin:
		return fmt.Sprintf("%s wins after %d moves", that.Mark, that.Moves)
	case OutcomeDraw:
		return fmt.Sprintf("draw after %d moves", that.Moves)
	case OutcomeDisqualified:
		return fmt.Sprintf("%s disqualified after %d moves: %v", that.Mark, that.Moves, that.Cause)
	default:
		return "in progress"
	}
}

func (that Result) state() State {
	switch that.Outcome {
	case OutcomeWin:
		return StateWon
	case OutcomeDraw:
		return StateDraw
	case OutcomeDisqualified:
		return StateDisqualified
	default:
		return StateInProgress
	}
}
