package domain

import "errors"

// Solver and input errors. Callers match them with errors.Is.
var (
	// ErrInvalidCapacity indicates a negative knapsack capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidItem indicates an item with negative weight or value.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidInput indicates malformed problem input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyItems indicates an exponential solver was asked to run past its item limit.
	// The harness treats it as "skipped", not as a failure.
	ErrTooManyItems = errors.New("too many items for solver")

	// ErrTableTooLarge indicates a capacity whose DP row exceeds the configured cell budget.
	ErrTableTooLarge = errors.New("dp table exceeds cell budget")

	// ErrIndexMismatch indicates a solution referencing an item outside the set,
	// or the same item twice.
	ErrIndexMismatch = errors.New("selected index mismatch")

	// ErrOverCapacity indicates a solution whose selected weight exceeds capacity.
	ErrOverCapacity = errors.New("selection exceeds capacity")

	// ErrNotFound indicates a requested report does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownSolver indicates a solver name with no implementation.
	ErrUnknownSolver = errors.New("unknown solver")
)
