package ingest

import "errors"

var (
	ErrUserNotFound     = errors.New("the user does not exist")
	ErrResolutionFailed = errors.New("the merchant could not be resolved to a category")
)

// Row errors
var (
	ErrTooFewColumns    = errors.New("the row has too few columns")
	ErrAmountInvalid    = errors.New("the amount is not a valid decimal")
	ErrTimestampInvalid = errors.New("the timestamp could not be parsed")
)
