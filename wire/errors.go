package wire

import "errors"

var (
	// ErrInvalidLength indicates a codec was given input of an unusable size.
	ErrInvalidLength = errors.New("wire: invalid input length")
)
