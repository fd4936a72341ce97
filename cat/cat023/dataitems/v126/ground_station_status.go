// cat/cat023/dataitems/v126/ground_station_status.go
package v126

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// GroundStationStatus represents I023/100 - Ground Station Status
// Variable length (FX-chained): bit 8 of octet 1 is the system's
// operational release status, the rest reserved/edition-specific.
type GroundStationStatus struct {
	OperationalRelease bool // bit 8 of octet 1 (NOGO)
	Octets             []byte
}

// NewGroundStationStatus creates a new data item.
func NewGroundStationStatus() *GroundStationStatus {
	return &GroundStationStatus{}
}

// Decode reads octets until the FX bit (bit 1) is clear.
func (g *GroundStationStatus) Decode(buf *bytes.Buffer) (int, error) {
	var octets []byte
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return len(octets), fmt.Errorf("%w: I023/100: %v", asterix.ErrBufferTooShort, err)
		}
		octets = append(octets, b)
		if b&0x01 == 0 {
			break
		}
	}

	g.Octets = octets
	// Bit 8 carries NOGO (1 = not operationally released) in this edition,
	// not a direct "released" flag (astx_023.cpp's reference_vsn > 1 path).
	g.OperationalRelease = octets[0]&0x80 == 0

	return len(octets), nil
}

// Encode writes the stored octets back out, setting the FX bit on every
// octet but the last.
func (g *GroundStationStatus) Encode(buf *bytes.Buffer) (int, error) {
	if len(g.Octets) == 0 {
		var b byte
		if !g.OperationalRelease {
			b |= 0x80
		}
		g.Octets = []byte{b}
	}
	n := 0
	for i, b := range g.Octets {
		if i < len(g.Octets)-1 {
			b |= 0x01
		} else {
			b &^= 0x01
		}
		if err := buf.WriteByte(b); err != nil {
			return n, fmt.Errorf("writing I023/100: %w", err)
		}
		n++
	}
	return n, nil
}

// Validate validates the data item.
func (g *GroundStationStatus) Validate() error {
	if len(g.Octets) == 0 {
		return fmt.Errorf("%w: I023/100 has no octets", asterix.ErrInvalidField)
	}
	return nil
}

// String returns a string representation.
func (g *GroundStationStatus) String() string {
	status := "not released"
	if g.OperationalRelease {
		status = "released"
	}
	return fmt.Sprintf("operational status: %s (%d octets)", status, len(g.Octets))
}
