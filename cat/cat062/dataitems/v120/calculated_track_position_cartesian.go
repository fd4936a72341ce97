// dataitems/cat062/calculated_track_position_cartesian.go
package v120

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// CalculatedTrackPositionCartesian implements I062/100
// Calculated position in Cartesian co-ordinates with a resolution of 0.5m.
type CalculatedTrackPositionCartesian struct {
	X float64 // Meters, positive = east
	Y float64 // Meters, positive = north
}

func (p *CalculatedTrackPositionCartesian) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 6, "cartesian position")
	if err != nil {
		return 0, err
	}

	rawX := wire.SignExtend24(wire.Uint24BE(data[0:3]))
	p.X = float64(rawX) * 0.5 // LSB = 0.5 meters

	rawY := wire.SignExtend24(wire.Uint24BE(data[3:6]))
	p.Y = float64(rawY) * 0.5 // LSB = 0.5 meters

	return 6, p.Validate()
}

func (p *CalculatedTrackPositionCartesian) Encode(buf *bytes.Buffer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	rawX := uint32(int32(math.Round(p.X / 0.5)))
	rawY := uint32(int32(math.Round(p.Y / 0.5)))

	wire.PutUint24BE(buf, rawX)
	wire.PutUint24BE(buf, rawY)

	return 6, nil
}

func (p *CalculatedTrackPositionCartesian) Validate() error {
	// Check range: The max value for a 24-bit two's complement number is 2^23-1,
	// which translates to (2^23-1)*0.5 meters
	maxValue := (1<<23 - 1) * 0.5
	minValue := -(1 << 23) * 0.5

	if p.X < minValue || p.X > maxValue {
		return fmt.Errorf("the X coordinate out of range [%f,%f]: %f", minValue, maxValue, p.X)
	}
	if p.Y < minValue || p.Y > maxValue {
		return fmt.Errorf("the Y coordinate out of range [%f,%f]: %f", minValue, maxValue, p.Y)
	}
	return nil
}

func (p *CalculatedTrackPositionCartesian) String() string {
	return fmt.Sprintf("X: %.1fm, Y: %.1fm", p.X, p.Y)
}
