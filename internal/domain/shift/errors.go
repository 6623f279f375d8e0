package shift

import "errors"

var (
	ErrInvalidTime = errors.New("time must start with an hour")
)
