// dataitems/cat048/special_purpose.go
package v132

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// SpecialPurpose implements SP048
// Special Purpose Field
type SpecialPurpose struct {
	Data []byte
}

// Decode implements the DataItem interface
func (s *SpecialPurpose) Decode(buf *bytes.Buffer) (int, error) {
	// First byte is length indicator
	lenByte, err := wire.TakeByte(buf, "special purpose length")
	if err != nil {
		return 0, err
	}

	// Length is in octets
	length := int(lenByte)

	// Read the data
	data, err := wire.Take(buf, length, "special purpose data")
	if err != nil {
		return 1, err
	}

	// Store length byte and data
	s.Data = append([]byte{lenByte}, data...)

	return 1 + length, nil
}

// Encode implements the DataItem interface
func (s *SpecialPurpose) Encode(buf *bytes.Buffer) (int, error) {
	if len(s.Data) == 0 {
		// If no data, encode a minimal valid value (zero length)
		return buf.Write([]byte{0})
	}

	return buf.Write(s.Data)
}

// Validate implements the DataItem interface
func (s *SpecialPurpose) Validate() error {
	// Since this is implementation-specific, we don't validate the content
	return nil
}

// String returns a human-readable representation
func (s *SpecialPurpose) String() string {
	if len(s.Data) <= 1 {
		return "SpecialPurpose[empty]"
	}
	return fmt.Sprintf("SpecialPurpose[%d bytes]", len(s.Data)-1)
}
