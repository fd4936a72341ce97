package v10

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// StationConfigurationStatus represents I002/050 - Station Configuration Status
type StationConfigurationStatus struct {
	Status uint8 // Configuration status bits
}

func (s *StationConfigurationStatus) Decode(buf *bytes.Buffer) (int, error) {
	bytesRead := 0

	b, err := wire.TakeByte(buf, "station configuration status")
	if err != nil {
		return 0, err
	}
	bytesRead++

	// First octet: status bits (bits 8-2), FX (bit 1)
	s.Status = (b >> 1) & 0x7F

	// Check FX bit for extension
	hasFX := (b & 0x01) != 0

	// Handle extensions if present
	for hasFX {
		next, err := wire.TakeByte(buf, "station configuration status extension")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++
		hasFX = (next & 0x01) != 0
	}

	return bytesRead, nil
}

func (s *StationConfigurationStatus) Encode(buf *bytes.Buffer) (int, error) {
	// First octet: status in bits 8-2, no FX
	octet := (s.Status & 0x7F) << 1
	buf.WriteByte(octet)
	return 1, nil
}

func (s *StationConfigurationStatus) Validate() error {
	return nil
}

func (s *StationConfigurationStatus) String() string {
	return fmt.Sprintf("Status: %02X", s.Status)
}
