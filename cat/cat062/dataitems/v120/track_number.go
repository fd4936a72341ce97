// dataitems/cat062/track_number.go
package v120

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TrackNumber implements I062/040
// Identification of a track.
type TrackNumber struct {
	Value uint16 // Track number value (0-65535)
}

func (t *TrackNumber) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "track number")
	if err != nil {
		return 0, err
	}

	t.Value = wire.Uint16BE(data)
	return 2, nil
}

func (t *TrackNumber) Encode(buf *bytes.Buffer) (int, error) {
	wire.PutUint16BE(buf, t.Value)
	return 2, nil
}

func (t *TrackNumber) String() string {
	return fmt.Sprintf("%d", t.Value)
}

func (t *TrackNumber) Validate() error {
	return nil
}
