package v12

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// MeasuredRadialDopplerSpeed represents I001/120 - Measured Radial Doppler Speed
type MeasuredRadialDopplerSpeed struct {
	DopplerSpeed float64 // Doppler speed in m/s (LSB = 1 m/s, signed)
}

func (m *MeasuredRadialDopplerSpeed) Decode(buf *bytes.Buffer) (int, error) {
	b, err := wire.TakeByte(buf, "doppler speed")
	if err != nil {
		return 0, err
	}

	// Signed 8-bit value
	m.DopplerSpeed = float64(int8(b))

	return 1, nil
}

func (m *MeasuredRadialDopplerSpeed) Encode(buf *bytes.Buffer) (int, error) {
	speed := int8(m.DopplerSpeed)
	buf.WriteByte(byte(speed))
	return 1, nil
}

func (m *MeasuredRadialDopplerSpeed) String() string {
	return fmt.Sprintf("%.0f m/s", m.DopplerSpeed)
}

func (m *MeasuredRadialDopplerSpeed) Validate() error {
	return nil
}
