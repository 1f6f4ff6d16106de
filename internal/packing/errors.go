package packing

import "errors"

// ErrInvalidChunkCount is returned when the requested chunk count is below 1.
var ErrInvalidChunkCount = errors.New("chunk count must be at least 1")
