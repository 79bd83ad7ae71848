package types

import "errors"

var ErrInvalidMonth = errors.New("invalid month")
