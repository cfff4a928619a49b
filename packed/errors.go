package packed

import (
	"errors"
)

var (
	ErrInvalidBitWidth = errors.New("invalid bit width")
	ErrIndexOutOfRange = errors.New("index out of range")
)
