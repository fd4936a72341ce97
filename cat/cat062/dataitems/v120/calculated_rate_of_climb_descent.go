// dataitems/cat062/calculated_rate_of_climb_descent.go
package v120

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// CalculatedRateOfClimbDescent implements I062/220
// Calculated rate of Climb/Descent of an aircraft.
type CalculatedRateOfClimbDescent struct {
	Rate float64 // Rate in feet/minute, positive for climb, negative for descent
}

func (c *CalculatedRateOfClimbDescent) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "calculated rate of climb/descent")
	if err != nil {
		return 0, err
	}

	// Rate in two's complement form, LSB = 6.25 feet/minute
	raw := int16(wire.Uint16BE(data))
	c.Rate = float64(raw) * 6.25

	return 2, nil
}

func (c *CalculatedRateOfClimbDescent) Encode(buf *bytes.Buffer) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	raw := int16(math.Round(c.Rate / 6.25))
	wire.PutUint16BE(buf, uint16(raw))

	return 2, nil
}

func (c *CalculatedRateOfClimbDescent) Validate() error {
	// int16 range with LSB of 6.25 gives range of approximately ±32000 feet/minute
	// but there's no specific range mentioned in the spec, so we use a reasonable limit
	if c.Rate < -32000 || c.Rate > 32000 {
		return fmt.Errorf("rate of climb/descent out of range: %f", c.Rate)
	}
	return nil
}

func (c *CalculatedRateOfClimbDescent) String() string {
	if c.Rate > 0 {
		return fmt.Sprintf("Rate of Climb: %.0f ft/min", c.Rate)
	} else if c.Rate < 0 {
		return fmt.Sprintf("Rate of Descent: %.0f ft/min", -c.Rate)
	}
	return "Level Flight"
}
