package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

// Player - binds a playing mark to the robot deciding its moves.
// Two players are equal when they share the mark and the very same robot.
type Player struct {
	mark  entity.Mark
	robot entity.Robot
}

func NewPlayer(mark entity.Mark, robot entity.Robot) (Player, error) {
	if !mark.IsValid() {
		return Player{}, fmt.Errorf("%w: player mark %q", apperror.ErrInvalidConfiguration, string(mark))
	}

	if robot == nil {
		return Player{}, fmt.Errorf("%w: robot %s may not be nil", apperror.ErrInvalidConfiguration, mark)
	}

	name, err := robotName(robot)
	if err != nil {
		return Player{}, fmt.Errorf("%w: robot %s: %w", apperror.ErrInvalidConfiguration, mark, err)
	}

	if strings.TrimSpace(name) == "" {
		return Player{}, fmt.Errorf("%w: robot %s master name may not be blank", apperror.ErrInvalidConfiguration, mark)
	}

	return Player{mark: mark, robot: robot}, nil
}

// robotName - asks the robot for its name. A nil pointer behind the interface panics here.
func robotName(robot entity.Robot) (name string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", apperror.ErrRobotPanicked, r)
		}
	}()

	return robot.Name(), nil
}

func (that Player) Mark() entity.Mark {
	return that.mark
}

func (that Player) Robot() entity.Robot {
	return that.robot
}

func (that Player) Name() string {
	if that.robot == nil {
		return ""
	}
	return that.robot.Name()
}

func (that Player) OpponentMark() entity.Mark {
	return that.mark.Opponent()
}

func (that Player) String() string {
	return fmt.Sprintf("%s [%s]", that.Name(), that.mark)
}
