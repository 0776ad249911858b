package apperror

import "errors"

var (
	ErrOutOfRange           = errors.New("cell is out of range")
	ErrAlreadyOccupied      = errors.New("cell is already occupied")
	ErrInvalidMark          = errors.New("invalid mark")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrRobotPanicked        = errors.New("robot panicked while deciding")
	ErrUnknownRobot         = errors.New("unknown robot kind")
)
