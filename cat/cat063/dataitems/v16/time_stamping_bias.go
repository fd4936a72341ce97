// cat/cat063/dataitems/v16/time_stamping_bias.go
package v16

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TimeStampingBias implements I063/070
// Plot Time stamping bias, in two's complement form
type TimeStampingBias struct {
	Bias int16 // Time bias in milliseconds, two's complement
}

func (t *TimeStampingBias) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "time stamping bias")
	if err != nil {
		return 0, err
	}

	// Decode value as signed 16-bit integer (two's complement)
	t.Bias = int16(wire.Uint16BE(data))

	return 2, t.Validate()
}

func (t *TimeStampingBias) Encode(buf *bytes.Buffer) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	// Encode as two's complement 16-bit value
	var b bytes.Buffer
	wire.PutUint16BE(&b, uint16(t.Bias))

	n, err := buf.Write(b.Bytes())
	if err != nil {
		return n, fmt.Errorf("writing time stamping bias: %w", err)
	}
	return n, nil
}

func (t *TimeStampingBias) Validate() error {
	// The specification doesn't indicate a specific range limitation
	// An int16 can hold values from -32768 to 32767 ms
	return nil
}

func (t *TimeStampingBias) String() string {
	return fmt.Sprintf("%d ms", t.Bias)
}
