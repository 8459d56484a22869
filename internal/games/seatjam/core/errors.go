package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every construction-time ValidationError.
var ErrInvalidArgument = errors.New("invalid argument")

// Move errors returned by Board.
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrNoRobot     = errors.New("no robot on source cell")
	ErrSameCell    = errors.New("source and destination are the same cell")
	ErrOccupied    = errors.New("destination cell is blocked")
	ErrUnreachable = errors.New("no path to destination")
	ErrStalePath   = errors.New("path is no longer walkable")
)

// ValidationError contains details about a rejected grid or scenario.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold for validation failures.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
