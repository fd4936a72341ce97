// cat/cat023/dataitems/v126/service_status.go
package v126

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// ServiceStatus represents I023/110 - Service Status
// Variable length (FX-chained); bits 4-2 of octet 1 carry the status code.
type ServiceStatus struct {
	Status uint8
	Octets []byte
}

// NewServiceStatus creates a new data item.
func NewServiceStatus() *ServiceStatus {
	return &ServiceStatus{}
}

// Decode reads octets until the FX bit (bit 1) is clear.
func (s *ServiceStatus) Decode(buf *bytes.Buffer) (int, error) {
	var octets []byte
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return len(octets), fmt.Errorf("%w: I023/110: %v", asterix.ErrBufferTooShort, err)
		}
		octets = append(octets, b)
		if b&0x01 == 0 {
			break
		}
	}

	s.Octets = octets
	s.Status = (octets[0] >> 1) & 0x07

	return len(octets), nil
}

// Encode writes the stored octets back out.
func (s *ServiceStatus) Encode(buf *bytes.Buffer) (int, error) {
	if len(s.Octets) == 0 {
		s.Octets = []byte{(s.Status & 0x07) << 1}
	}
	n := 0
	for i, b := range s.Octets {
		if i < len(s.Octets)-1 {
			b |= 0x01
		} else {
			b &^= 0x01
		}
		if err := buf.WriteByte(b); err != nil {
			return n, fmt.Errorf("writing I023/110: %w", err)
		}
		n++
	}
	return n, nil
}

// Validate validates the data item.
func (s *ServiceStatus) Validate() error {
	if len(s.Octets) == 0 {
		return fmt.Errorf("%w: I023/110 has no octets", asterix.ErrInvalidField)
	}
	return nil
}

var serviceStatusNames = map[uint8]string{
	0: "unknown", 1: "failed", 2: "disabled", 3: "degraded", 4: "normal",
}

// String returns a string representation.
func (s *ServiceStatus) String() string {
	name, ok := serviceStatusNames[s.Status]
	if !ok {
		name = "reserved"
	}
	return fmt.Sprintf("status=%d (%s)", s.Status, name)
}
