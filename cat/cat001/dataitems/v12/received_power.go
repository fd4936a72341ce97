package v12

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// ReceivedPower represents I001/131 - Received Power
type ReceivedPower struct {
	Power int8 // Received power in dBm (signed 8-bit)
}

func (r *ReceivedPower) Decode(buf *bytes.Buffer) (int, error) {
	b, err := wire.TakeByte(buf, "received power")
	if err != nil {
		return 0, err
	}
	r.Power = int8(b)

	return 1, nil
}

func (r *ReceivedPower) Encode(buf *bytes.Buffer) (int, error) {
	buf.WriteByte(byte(r.Power))
	return 1, nil
}

func (r *ReceivedPower) String() string {
	return fmt.Sprintf("%d dBm", r.Power)
}

func (r *ReceivedPower) Validate() error {
	return nil
}
