package v10

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// AntennaRotationSpeed represents I002/041 - Antenna Rotation Speed
type AntennaRotationSpeed struct {
	RotationPeriod float64 // Rotation period in seconds (LSB = 1/128 seconds)
}

func (a *AntennaRotationSpeed) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "antenna rotation speed")
	if err != nil {
		return 0, err
	}
	raw := wire.Uint16BE(data)
	a.RotationPeriod = float64(raw) / 128.0
	return 2, nil
}

func (a *AntennaRotationSpeed) Encode(buf *bytes.Buffer) (int, error) {
	raw := uint16(a.RotationPeriod * 128.0)
	wire.PutUint16BE(buf, raw)
	return 2, nil
}

func (a *AntennaRotationSpeed) Validate() error {
	return nil
}

func (a *AntennaRotationSpeed) String() string {
	return fmt.Sprintf("%.3f s", a.RotationPeriod)
}
