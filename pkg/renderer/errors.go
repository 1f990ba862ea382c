package renderer

import "errors"

var (
	// ErrInvalidConfig is returned for render settings that cannot produce an image
	ErrInvalidConfig = errors.New("invalid render config")

	// ErrWorkerFailed is returned when a render worker stops abnormally. The
	// whole render fails since a missing worker would bias the average.
	ErrWorkerFailed = errors.New("render worker failed")

	// ErrBufferMismatch is returned when per-worker buffers cannot be combined
	ErrBufferMismatch = errors.New("render buffers do not match")
)
