package puzzle

import "errors"

// Sentinel errors returned by puzzle operations.
var (
	// ErrUnknownMove is returned when a token is not in the variant's move set.
	ErrUnknownMove = errors.New("puzzle: unknown move")

	// ErrIllegalMove is returned when a move is known but not allowed in the
	// current state (square swap legality, when enforced).
	ErrIllegalMove = errors.New("puzzle: move not legal in current state")

	// ErrDisposed is returned by Rotate after Dispose.
	ErrDisposed = errors.New("puzzle: disposed")

	// ErrInvalidTable is returned when a move table fails validation.
	ErrInvalidTable = errors.New("puzzle: invalid move table")
)
