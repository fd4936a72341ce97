// dataitems/cat062/measured_flight_level.go
package v120

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// MeasuredFlightLevel implements I062/136
// Last valid and credible flight level used to update the track
type MeasuredFlightLevel struct {
	FlightLevel float64 // Flight level (1 FL = 100 ft)
}

func (m *MeasuredFlightLevel) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "measured flight level")
	if err != nil {
		return 0, err
	}

	// Flight level in two's complement form, LSB = 1/4 FL = 25 ft
	raw := int16(wire.Uint16BE(data))
	m.FlightLevel = float64(raw) * 0.25

	return 2, nil
}

func (m *MeasuredFlightLevel) Encode(buf *bytes.Buffer) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	// Convert to raw value
	raw := int16(m.FlightLevel / 0.25)

	data := []byte{
		byte(raw >> 8),
		byte(raw),
	}

	n, err := buf.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing measured flight level: %w", err)
	}
	return n, nil
}

func (m *MeasuredFlightLevel) Validate() error {
	// According to the spec, valid range is -15 FL to 1500 FL
	if m.FlightLevel < -15 || m.FlightLevel > 1500 {
		return fmt.Errorf("flight level out of range [-15,1500]: %f", m.FlightLevel)
	}
	return nil
}

func (m *MeasuredFlightLevel) String() string {
	return fmt.Sprintf("Measured Flight Level: FL %.2f", m.FlightLevel)
}
