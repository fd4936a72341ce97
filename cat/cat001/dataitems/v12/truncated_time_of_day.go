package v12

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TruncatedTimeOfDay represents I001/141 - Truncated Time of Day
// 2 bytes, LSB = 1/128 second
type TruncatedTimeOfDay struct {
	TimeOfDay float64 // Seconds (LSB = 1/128 s)
}

func (t *TruncatedTimeOfDay) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "truncated time of day")
	if err != nil {
		return 0, err
	}

	// 16-bit unsigned value, LSB = 1/128 second
	raw := wire.Uint16BE(data)
	t.TimeOfDay = float64(raw) / 128.0

	return 2, nil
}

func (t *TruncatedTimeOfDay) Encode(buf *bytes.Buffer) (int, error) {
	// Convert to 1/128 second units
	raw := uint16(t.TimeOfDay * 128.0)

	wire.PutUint16BE(buf, raw)

	return 2, nil
}

func (t *TruncatedTimeOfDay) String() string {
	return fmt.Sprintf("%.3fs", t.TimeOfDay)
}

func (t *TruncatedTimeOfDay) Validate() error {
	return nil
}
