package trivia

import "errors"

// Error kinds returned by Service. Callers map them to HTTP statuses with
// errors.Is; the mapping is deliberately coarse.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrInternal      = errors.New("internal error")
)
