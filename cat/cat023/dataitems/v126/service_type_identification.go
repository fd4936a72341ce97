// cat/cat023/dataitems/v126/service_type_identification.go
package v126

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// ServiceTypeIdentification represents I023/015 - Service Type and
// Identification. Fixed length: 1 byte; SID in bits 8-5, STYP in bits 4-1.
type ServiceTypeIdentification struct {
	ServiceID   uint8
	ServiceType uint8
}

// NewServiceTypeIdentification creates a new data item.
func NewServiceTypeIdentification() *ServiceTypeIdentification {
	return &ServiceTypeIdentification{}
}

// Decode decodes the field from bytes.
func (s *ServiceTypeIdentification) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	b := buf.Next(1)[0]
	s.ServiceID = (b >> 4) & 0x0f
	s.ServiceType = b & 0x0f
	return 1, nil
}

// Encode encodes the field to bytes.
func (s *ServiceTypeIdentification) Encode(buf *bytes.Buffer) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	b := (s.ServiceID&0x0f)<<4 | (s.ServiceType & 0x0f)
	if err := buf.WriteByte(b); err != nil {
		return 0, fmt.Errorf("writing service type/identification: %w", err)
	}
	return 1, nil
}

// Validate validates the field.
func (s *ServiceTypeIdentification) Validate() error {
	if s.ServiceID > 0x0f || s.ServiceType > 0x0f {
		return fmt.Errorf("%w: service id/type must fit 4 bits", asterix.ErrInvalidField)
	}
	return nil
}

var serviceTypeNames = map[uint8]string{
	1: "ADS-B VDL4", 2: "ADS-B Extended Squitter", 3: "ADS-B UAT",
	4: "TIS-B VDL4", 5: "TIS-B Extended Squitter", 6: "TIS-B UAT",
	7: "FIS-B VDL4", 8: "GRAS VDL4", 9: "MLT",
}

// String returns a string representation.
func (s *ServiceTypeIdentification) String() string {
	name, ok := serviceTypeNames[s.ServiceType]
	if !ok {
		name = "Unknown"
	}
	return fmt.Sprintf("SID=%d STYP=%d (%s)", s.ServiceID, s.ServiceType, name)
}
