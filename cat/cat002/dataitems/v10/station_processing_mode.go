package v10

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// StationProcessingMode represents I002/060 - Station Processing Mode
type StationProcessingMode struct {
	Mode uint8 // Processing mode bits
}

func (s *StationProcessingMode) Decode(buf *bytes.Buffer) (int, error) {
	bytesRead := 0

	b, err := wire.TakeByte(buf, "station processing mode")
	if err != nil {
		return 0, err
	}
	bytesRead++

	// First octet: mode bits (bits 8-2), FX (bit 1)
	s.Mode = (b >> 1) & 0x7F

	// Check FX bit for extension
	hasFX := (b & 0x01) != 0

	// Handle extensions if present
	for hasFX {
		next, err := wire.TakeByte(buf, "station processing mode extension")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++
		hasFX = (next & 0x01) != 0
	}

	return bytesRead, nil
}

func (s *StationProcessingMode) Encode(buf *bytes.Buffer) (int, error) {
	// First octet: mode in bits 8-2, no FX
	octet := (s.Mode & 0x7F) << 1
	buf.WriteByte(octet)
	return 1, nil
}

func (s *StationProcessingMode) Validate() error {
	return nil
}

func (s *StationProcessingMode) String() string {
	return fmt.Sprintf("Mode: %02X", s.Mode)
}
