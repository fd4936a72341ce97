// dataitems/cat062/calculated_acceleration.go
package v120

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// CalculatedAcceleration implements I062/210
// Calculated Acceleration of the target expressed in Cartesian co-ordinates.
type CalculatedAcceleration struct {
	Ax float64 // X component of acceleration in m/s²
	Ay float64 // Y component of acceleration in m/s²
}

func (c *CalculatedAcceleration) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "calculated acceleration")
	if err != nil {
		return 0, err
	}

	// Ax: top byte, LSB = 0.25 m/s²
	c.Ax = float64(int8(data[0])) * 0.25

	// Ay: bottom byte, LSB = 0.25 m/s²
	c.Ay = float64(int8(data[1])) * 0.25

	return 2, nil
}

func (c *CalculatedAcceleration) Encode(buf *bytes.Buffer) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	axRaw := int8(math.Round(c.Ax / 0.25))
	ayRaw := int8(math.Round(c.Ay / 0.25))

	buf.Write([]byte{byte(axRaw), byte(ayRaw)})
	return 2, nil
}

func (c *CalculatedAcceleration) Validate() error {
	// int8 range with LSB of 0.25 gives range of -32 to 31.75 m/s²
	if c.Ax < -32 || c.Ax > 31.75 {
		return fmt.Errorf("Ax component out of range [-32,31.75]: %f", c.Ax)
	}
	if c.Ay < -32 || c.Ay > 31.75 {
		return fmt.Errorf("Ay component out of range [-32,31.75]: %f", c.Ay)
	}
	return nil
}

func (c *CalculatedAcceleration) String() string {
	magnitude := math.Sqrt(c.Ax*c.Ax + c.Ay*c.Ay)
	direction := math.Atan2(c.Ax, c.Ay) * 180 / math.Pi
	if direction < 0 {
		direction += 360
	}

	return fmt.Sprintf("Acceleration: %.2f m/s² at %.1f° (Ax: %.2f m/s², Ay: %.2f m/s²)",
		magnitude, direction, c.Ax, c.Ay)
}
