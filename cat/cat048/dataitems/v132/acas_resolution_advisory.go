// dataitems/cat048/acas_resolution_advisory.go
package v132

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// ACASResolutionAdvisory implements I048/260
// Seven-byte (56-bit) Comm-B reply extracted from the aircraft's ACAS transponder
// register BDS 3,0, containing the currently active resolution advisories.
type ACASResolutionAdvisory struct {
	ARA uint16 // Active Resolution Advisories, bits 56-43 (14 bits)
	RAC uint8  // Resolution Advisory Complement, bits 42-39 (4 bits)
	RAT bool   // RA Terminated
	MTE bool   // Multiple Threat Encounter
	TTI uint8  // Threat Type Indicator, bits 36-35 (2 bits)

	// Threat Identity Data, bits 34-1, interpretation depends on TTI:
	// 0 = no data, 1 = Mode S address, 2 = altitude/range/bearing
	TID []byte
}

// Decode implements the DataItem interface
func (a *ACASResolutionAdvisory) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 7, "ACAS resolution advisory")
	if err != nil {
		return 0, err
	}

	a.ARA = (uint16(data[0]) << 6) | (uint16(data[1]) >> 2) // bits 56-43
	a.RAC = ((data[1] & 0x03) << 2) | (data[2] >> 6)        // bits 42-39
	a.RAT = (data[2] & 0x20) != 0                           // bit 38
	a.MTE = (data[2] & 0x10) != 0                           // bit 37
	a.TTI = (data[2] >> 2) & 0x03                           // bits 36-35

	a.TID = append([]byte(nil), data[2]&0x03, data[3], data[4], data[5], data[6])

	return 7, a.Validate()
}

// Encode implements the DataItem interface
func (a *ACASResolutionAdvisory) Encode(buf *bytes.Buffer) (int, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	data := make([]byte, 7)

	data[0] = byte(a.ARA >> 6)
	data[1] = byte((a.ARA & 0x3F) << 2)
	data[1] |= (a.RAC >> 2) & 0x03
	data[2] = byte((a.RAC & 0x03) << 6)
	if a.RAT {
		data[2] |= 0x20
	}
	if a.MTE {
		data[2] |= 0x10
	}
	data[2] |= (a.TTI & 0x03) << 2

	if len(a.TID) == 5 {
		data[2] |= a.TID[0] & 0x03
		copy(data[3:], a.TID[1:])
	}

	buf.Write(data)
	return 7, nil
}

// Validate implements the DataItem interface
func (a *ACASResolutionAdvisory) Validate() error {
	if a.RAC > 0x0F {
		return fmt.Errorf("invalid RAC value: %d", a.RAC)
	}
	if a.TTI > 3 {
		return fmt.Errorf("invalid TTI value: %d", a.TTI)
	}
	return nil
}

// String returns a human-readable representation
func (a *ACASResolutionAdvisory) String() string {
	flags := ""
	if a.RAT {
		flags += " RAT"
	}
	if a.MTE {
		flags += " MTE"
	}
	return fmt.Sprintf("ARA=%014b RAC=%04b TTI=%d%s", a.ARA, a.RAC, a.TTI, flags)
}
