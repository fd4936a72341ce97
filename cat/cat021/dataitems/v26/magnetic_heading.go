// Package v26 implements the dataitems for ASTERIX Category 021 Version 2.6
package v26

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// MagneticHeading implements I021/152
// This data item represents the magnetic heading of the aircraft in degrees
type MagneticHeading struct {
	Heading float64 // Heading in degrees
}

func (m *MagneticHeading) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "magnetic heading")
	if err != nil {
		return 0, err
	}

	// Convert the bytes to heading value
	// Heading LSB = 360/2^16 = 0.0054931640625 degrees
	m.Heading = float64(wire.Uint16BE(data)) * (360.0 / 65536.0)

	return 2, m.Validate()
}

func (m *MagneticHeading) Encode(buf *bytes.Buffer) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	// Convert heading to raw value (0 to 65535 representing 0 to 360 degrees)
	// Using the constant 65535.0 instead of 65536.0 to avoid potential overflow issues
	// when the heading is exactly 360.0 degrees
	rawValue := uint16(math.Round(m.Heading * (65535.0 / 360.0)))

	wire.PutUint16BE(buf, rawValue)
	return 2, nil
}

func (m *MagneticHeading) Validate() error {
	// Heading should be between 0 and 360 degrees
	if m.Heading < 0 || m.Heading >= 360 {
		return fmt.Errorf("magnetic heading out of valid range [0,360): %f", m.Heading)
	}
	return nil
}

func (m *MagneticHeading) String() string {
	return fmt.Sprintf("%.2fÂ°", m.Heading)
}
