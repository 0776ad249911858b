package entity

// Robot - the contract every Tic-Tac-Toe robot has to satisfy to be plugged into the engine.
//
// Name identifies the robot master and must not be blank. Decide returns the cell to stamp
// mark on; the engine disqualifies a robot that answers with a cell out of range or already taken.
type Robot interface {
	Name() string
	Decide(snapshot Snapshot, mark Mark) int
}

// Standing - aggregate tournament tallies for one robot.
type Standing struct {
	Name              string `json:"name"`
	Wins              int64  `json:"wins"`
	Losses            int64  `json:"losses"`
	Draws             int64  `json:"draws"`
	Disqualifications int64  `json:"disqualifications"`
}

func (that *Standing) Played() int64 {
	return that.Wins + that.Losses + that.Draws
}

// Points - two for a win, one for a draw.
func (that *Standing) Points() int64 {
	return 2*that.Wins + that.Draws
}

// Tally - the increments recorded for one robot after one game.
type Tally struct {
	Wins              int64
	Losses            int64
	Draws             int64
	Disqualifications int64
}
