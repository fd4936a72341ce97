// dataitems/cat048/mode1_code.go
package v132

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// Mode1Code implements I048/055
// Reply to Mode-1 interrogation.
type Mode1Code struct {
	V    bool  // Code validated
	G    bool  // Garbled code
	L    bool  // Mode-1 code derived/smoothed
	Code uint8 // Mode-1 code in octal (2 digits)
}

// Decode implements the DataItem interface
func (m *Mode1Code) Decode(buf *bytes.Buffer) (int, error) {
	raw, err := wire.TakeByte(buf, "Mode-1 code")
	if err != nil {
		return 0, err
	}

	m.V = (raw & 0x80) != 0 // bit 8
	m.G = (raw & 0x40) != 0 // bit 7
	m.L = (raw & 0x20) != 0 // bit 6

	// Extract octal digits
	a := (raw & 0x1C) >> 2 // bits 5-3 (A)
	b := raw & 0x03        // bits 2-1 (B)

	// Combine digits into octal representation
	m.Code = uint8(a)*10 + uint8(b)

	return 1, m.Validate()
}

// Encode implements the DataItem interface
func (m *Mode1Code) Encode(buf *bytes.Buffer) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	// Extract octal digits
	a := (m.Code / 10) % 10
	b := m.Code % 10

	data := make([]byte, 1)

	// Set flag bits
	if m.V {
		data[0] |= 0x80 // bit 8
	}
	if m.G {
		data[0] |= 0x40 // bit 7
	}
	if m.L {
		data[0] |= 0x20 // bit 6
	}

	// Set code bits
	data[0] |= byte(a&0x07) << 2 // bits 5-3 (A)
	data[0] |= byte(b & 0x03)    // bits 2-1 (B)

	buf.Write(data)
	return 1, nil
}

// Validate implements the DataItem interface
func (m *Mode1Code) Validate() error {
	// Check that each digit is a valid octal digit (0-7)
	a := (m.Code / 10) % 10
	b := m.Code % 10

	if a > 7 || b > 7 {
		return fmt.Errorf("invalid octal digit in Mode-1 code: %02d", m.Code)
	}

	return nil
}

// String returns a human-readable representation
func (m *Mode1Code) String() string {
	flags := ""
	if m.V {
		flags += "V,"
	}
	if m.G {
		flags += "G,"
	}
	if m.L {
		flags += "L,"
	}

	if flags != "" {
		flags = flags[:len(flags)-1] + " " // Remove trailing comma
	}

	return fmt.Sprintf("%s%02d", flags, m.Code)
}
