package apperror

import "errors"

var (
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownController = errors.New("unknown move controller")
	ErrInputClosed       = errors.New("input source is closed")
	ErrLineTooLong       = errors.New("input line is too long")
	ErrResultExists      = errors.New("result already recorded")
	ErrInvalidGameCount  = errors.New("game count must be positive")
	ErrInterrupted       = errors.New("game interrupted")
	ErrInstancePanic     = errors.New("game instance panicked")
)
