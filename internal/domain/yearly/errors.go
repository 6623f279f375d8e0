package yearly

import "errors"

var (
	ErrInvalidYear = errors.New("year must be a four digit number between 1970 and 9999")
)
