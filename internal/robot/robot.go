package robot

import (
	"fmt"
	"sort"

	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

const (
	KindRandom     = "random"
	KindSequential = "sequential"
	KindMinimax    = "minimax"
)

var factories = map[string]func(name string, seed int64) entity.Robot{
	KindRandom: func(name string, seed int64) entity.Robot {
		return NewRandom(name, seed)
	},
	KindSequential: func(name string, _ int64) entity.Robot {
		return NewSequential(name)
	},
	KindMinimax: func(name string, _ int64) entity.Robot {
		return NewMinimax(name)
	},
}

// New - builds a robot of the given kind. The seed only matters for random robots.
func New(kind, name string, seed int64) (entity.Robot, error) {
	factory, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q, known kinds: %v", apperror.ErrUnknownRobot, kind, Kinds())
	}

	return factory(name, seed), nil
}

func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}
