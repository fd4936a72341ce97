// recording/errors.go
package recording

import "fmt"

// Demultiplexer-level errors (§7 frame-level and I/O taxonomy).
var (
	ErrMalformedFrame = fmt.Errorf("malformed frame")
	ErrShortRead      = fmt.Errorf("short read")
)

// FrameError wraps a demultiplexer failure with the byte offset inside
// the file at which the malformed frame began (§7: "frame-level failures
// carry byte offset inside the file").
type FrameError struct {
	Offset int64
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame at offset %d: %v", e.Offset, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
