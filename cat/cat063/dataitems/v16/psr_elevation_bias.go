// cat/cat063/dataitems/v16/psr_elevation_bias.go
package v16

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// PSRElevationBias implements I063/092
// PSR Elevation Bias, in two's complement form
type PSRElevationBias struct {
	Bias float64 // Elevation bias in degrees (LSB = 360°/2^16 = 0.0055°)
}

// Use same constant as in azimuth bias
const elevationLSB = 360.0 / 65536.0 // 360°/2^16 = 0.0055°

func (p *PSRElevationBias) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "PSR elevation bias")
	if err != nil {
		return 0, err
	}

	// Decode as 16-bit two's complement
	biasRaw := int16(wire.Uint16BE(data))
	p.Bias = float64(biasRaw) * elevationLSB // LSB = 360°/2^16 = 0.0055°

	return 2, p.Validate()
}

func (p *PSRElevationBias) Encode(buf *bytes.Buffer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	// Encode the bias
	biasRaw := int16(math.Round(p.Bias / elevationLSB))

	var b bytes.Buffer
	wire.PutUint16BE(&b, uint16(biasRaw))

	n, err := buf.Write(b.Bytes())
	if err != nil {
		return n, fmt.Errorf("writing PSR elevation bias: %w", err)
	}
	return n, nil
}

func (p *PSRElevationBias) Validate() error {
	// Check for values that would overflow int16 when converted to raw representation
	maxBias := float64(math.MaxInt16) * elevationLSB
	minBias := float64(math.MinInt16) * elevationLSB

	if p.Bias < minBias || p.Bias > maxBias {
		return fmt.Errorf("PSR elevation bias out of valid range [%f,%f]: %f",
			minBias, maxBias, p.Bias)
	}

	return nil
}

func (p *PSRElevationBias) String() string {
	return fmt.Sprintf("%.4f°", p.Bias)
}
