package domain

import "errors"

// Error kinds surfaced by the core. Callers wrap them with context using
// fmt.Errorf("%w: ...") and classify with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidState    = errors.New("invalid state")
	ErrExhaustedBudget = errors.New("no remaining runtime left")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStoreFailure    = errors.New("store failure")
	ErrUnauthenticated = errors.New("unauthenticated")
)
