package notebook

import "errors"

// Sentinel errors so callers can detect lookup failures with errors.Is
// instead of string comparisons.
var (
	// ErrCellNotFound is returned when no cell with the requested identity
	// is registered.
	ErrCellNotFound = errors.New("notebook: cell not found")

	// ErrInvalidID indicates an empty identifier was supplied to a lookup.
	ErrInvalidID = errors.New("notebook: invalid cell id")
)
