// recording/frame.go
package recording

import "time"

// Frame is one demultiplexed unit of a recording: a byte offset at which
// it began, an optional line/board identifier, an optional capture
// timestamp, and the payload — normally one ASTERIX data block, handed
// untouched to the block dispatcher (§4.3).
type Frame struct {
	Offset    int64
	Line      uint32
	Timestamp time.Time
	Payload   []byte
}
