// asterix/context.go
package asterix

import "time"

// DecodingContext carries the per-frame ambient state that several data
// items depend on without it being part of their own wire encoding:
// the frame's date/time/line (from the recording-format header) and the
// most recent time-of-day observed, inherited by a record whose own ToD
// field is absent. Per §9's design note, this replaces the source's
// file-scope globals with an explicit value passed by reference through
// the frame demultiplexer and record decoder.
//
// A DecodingContext is not safe for concurrent use; the decoding pipeline
// is single-threaded per §5.
type DecodingContext struct {
	FrameDate time.Time
	FrameLine uint32

	lastToD    float64
	lastToDSet bool

	// Edition holds an edition ordinal for the category currently being
	// decoded (§4.5 "edition-dependent bit layouts"). The block and record
	// decoders in this package neither set nor read it; the active edition
	// is fixed by which UAP is registered with the Decoder.
	Edition int

	// RecordsInFrame is a per-frame record counter. ResetFrame zeroes it;
	// the block and record decoders in this package do not increment it.
	RecordsInFrame int
}

// NewDecodingContext returns a zeroed context ready for a new frame.
func NewDecodingContext() *DecodingContext {
	return &DecodingContext{}
}

// ResetFrame clears per-frame counters when the demultiplexer starts a
// new frame; last-ToD deliberately survives across frames (the inherited
// value is a running session quantity, not scoped to one frame).
func (c *DecodingContext) ResetFrame(date time.Time, line uint32) {
	c.FrameDate = date
	c.FrameLine = line
	c.RecordsInFrame = 0
}

// ObserveToD records a decoded time-of-day value as the most recent one
// seen, for later inheritance.
func (c *DecodingContext) ObserveToD(tod float64) {
	c.lastToD = tod
	c.lastToDSet = true
}

// LastToD returns the most recently observed time-of-day and whether one
// has been observed yet this session.
func (c *DecodingContext) LastToD() (float64, bool) {
	return c.lastToD, c.lastToDSet
}

// ContextAware is implemented by data items whose decoding depends on
// ambient per-frame state (inherited ToD, frame date/line, active
// edition) in addition to their own wire bytes. The record decoder calls
// SetContext before Decode on any item implementing this interface.
type ContextAware interface {
	SetContext(ctx *DecodingContext)
}
