// cat/cat034/dataitems/v129/antenna_rotation_period.go
package v129

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// AntennaRotationPeriod represents I034/041 - Antenna Rotation Period
// Fixed length: 2 bytes
// Antenna rotation period expressed as a multiple of 1/128 seconds
type AntennaRotationPeriod struct {
	Period float64 // Seconds
}

// NewAntennaRotationPeriod creates a new Antenna Rotation Period data item
func NewAntennaRotationPeriod() *AntennaRotationPeriod {
	return &AntennaRotationPeriod{}
}

// Decode decodes the Antenna Rotation Period from bytes
func (a *AntennaRotationPeriod) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "antenna rotation period")
	if err != nil {
		return 0, err
	}
	raw := wire.Uint16BE(data)

	// LSB = 1/128 seconds
	a.Period = float64(raw) / 128.0

	return 2, nil
}

// Encode encodes the Antenna Rotation Period to bytes
func (a *AntennaRotationPeriod) Encode(buf *bytes.Buffer) (int, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	// Convert seconds to 1/128 second units
	value := uint16(a.Period * 128.0)
	wire.PutUint16BE(buf, value)

	return 2, nil
}

// Validate validates the Antenna Rotation Period
func (a *AntennaRotationPeriod) Validate() error {
	if a.Period < 0 || a.Period > 512 {
		return fmt.Errorf("%w: antenna rotation period out of range: %.3f", asterix.ErrInvalidMessage, a.Period)
	}
	return nil
}

// String returns a string representation
func (a *AntennaRotationPeriod) String() string {
	return fmt.Sprintf("%.3f s (%.1f RPM)", a.Period, 60.0/a.Period)
}
