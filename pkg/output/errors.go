package output

import "errors"

// ErrBufferSize is returned when a pixel buffer does not match the image size
var ErrBufferSize = errors.New("pixel buffer does not match image size")
