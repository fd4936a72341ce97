package v10

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// SectorNumber represents I002/020 - Sector Number
type SectorNumber struct {
	SectorNumber float64 // Azimuth in degrees (LSB = 360/256 degrees)
}

func (s *SectorNumber) Decode(buf *bytes.Buffer) (int, error) {
	b, err := wire.TakeByte(buf, "sector number")
	if err != nil {
		return 0, err
	}
	s.SectorNumber = float64(b) * (360.0 / 256.0)
	return 1, nil
}

func (s *SectorNumber) Encode(buf *bytes.Buffer) (int, error) {
	sectorByte := uint8(s.SectorNumber * 256.0 / 360.0)
	buf.WriteByte(sectorByte)
	return 1, nil
}

func (s *SectorNumber) Validate() error {
	return nil
}

func (s *SectorNumber) String() string {
	return fmt.Sprintf("%.2f°", s.SectorNumber)
}
