package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
	ErrBusy         = errors.New("another action is in progress")

	ErrServiceUnavailable = errors.New("game service unavailable")
	ErrMalformedResponse  = errors.New("malformed response from game service")
	ErrRejected           = errors.New("request rejected by game service")
	ErrStaleResponse      = errors.New("response belongs to a superseded game")
)

// Rejection is a logical error reported by the game service, such as a move
// on an occupied cell. It matches ErrRejected with errors.Is.
type Rejection struct {
	Status int
	Reason string
}

func (that *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, that.Reason)
}

func (that *Rejection) Unwrap() error {
	return ErrRejected
}
