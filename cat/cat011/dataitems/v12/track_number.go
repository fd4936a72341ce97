// cat/cat011/dataitems/v12/track_number.go
package v12

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// TrackNumber represents I011/161 - Track Number
// Fixed length: 2 bytes, 12 bits used (bits 12-1).
type TrackNumber struct {
	Value uint16
}

func (t *TrackNumber) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes for track number, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	var raw uint16
	if err := binary.Read(buf, binary.BigEndian, &raw); err != nil {
		return 0, fmt.Errorf("reading track number: %w", err)
	}
	t.Value = raw & 0x0FFF
	return 2, nil
}

func (t *TrackNumber) Encode(buf *bytes.Buffer) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if err := binary.Write(buf, binary.BigEndian, t.Value&0x0FFF); err != nil {
		return 0, fmt.Errorf("writing track number: %w", err)
	}
	return 2, nil
}

func (t *TrackNumber) Validate() error {
	if t.Value > 0x0FFF {
		return fmt.Errorf("%w: track number %d exceeds 12-bit range", asterix.ErrInvalidMessage, t.Value)
	}
	return nil
}
