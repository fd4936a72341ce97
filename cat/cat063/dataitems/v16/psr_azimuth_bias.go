// cat/cat063/dataitems/v16/psr_azimuth_bias.go
package v16

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// PSRAzimuthBias implements I063/091
// PSR Azimuth Bias, in two's complement form
type PSRAzimuthBias struct {
	Bias float64 // Azimuth bias in degrees (LSB = 360°/2^16 = 0.0055°)
}

// Use same constant as in SSRModeSAzimuthBias
const psrAzimuthLSB = 360.0 / 65536.0 // 360°/2^16 = 0.0055°

func (p *PSRAzimuthBias) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 2, "PSR azimuth bias")
	if err != nil {
		return 0, err
	}

	// Decode as 16-bit two's complement
	biasRaw := int16(wire.Uint16BE(data))
	p.Bias = float64(biasRaw) * psrAzimuthLSB // LSB = 360°/2^16 = 0.0055°

	return 2, p.Validate()
}

func (p *PSRAzimuthBias) Encode(buf *bytes.Buffer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	// Encode the bias
	biasRaw := int16(math.Round(p.Bias / psrAzimuthLSB))

	var b bytes.Buffer
	wire.PutUint16BE(&b, uint16(biasRaw))

	n, err := buf.Write(b.Bytes())
	if err != nil {
		return n, fmt.Errorf("writing PSR azimuth bias: %w", err)
	}
	return n, nil
}

func (p *PSRAzimuthBias) Validate() error {
	// Check for values that would overflow int16 when converted to raw representation
	maxBias := float64(math.MaxInt16) * psrAzimuthLSB
	minBias := float64(math.MinInt16) * psrAzimuthLSB

	if p.Bias < minBias || p.Bias > maxBias {
		return fmt.Errorf("PSR azimuth bias out of valid range [%f,%f]: %f",
			minBias, maxBias, p.Bias)
	}

	return nil
}

func (p *PSRAzimuthBias) String() string {
	return fmt.Sprintf("%.4f°", p.Bias)
}
