package prediction

import "errors"

var (
	// ErrArityMismatch is returned when comparing coordinates of different length.
	ErrArityMismatch = errors.New("coordinates arity mismatch")
	// ErrDuplicateCoords is returned when the ground truth lists the same coordinates twice.
	ErrDuplicateCoords = errors.New("duplicate coordinates")
	// ErrUnknownCoords is returned when a sample targets coordinates that are not tracked.
	ErrUnknownCoords = errors.New("unknown coordinates")
	// ErrLengthMismatch is returned when a round does not carry one sample per prediction.
	ErrLengthMismatch = errors.New("samples do not match predictions")
)
