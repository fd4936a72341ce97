// dataitems/cat048/reserved_expansion.go
package v132

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// ReservedExpansion implements RE048
// Reserved Expansion Field
type ReservedExpansion struct {
	Data []byte
}

// Decode implements the DataItem interface
func (r *ReservedExpansion) Decode(buf *bytes.Buffer) (int, error) {
	// First byte is length indicator
	lenByte, err := wire.TakeByte(buf, "reserved expansion length")
	if err != nil {
		return 0, err
	}

	// Length is in octets
	length := int(lenByte)

	// Read the data
	data, err := wire.Take(buf, length, "reserved expansion data")
	if err != nil {
		return 1, err
	}

	// Store length byte and data
	r.Data = append([]byte{lenByte}, data...)

	return 1 + length, nil
}

// Encode implements the DataItem interface
func (r *ReservedExpansion) Encode(buf *bytes.Buffer) (int, error) {
	if len(r.Data) == 0 {
		// If no data, encode a minimal valid value (zero length)
		return buf.Write([]byte{0})
	}

	return buf.Write(r.Data)
}

// Validate implements the DataItem interface
func (r *ReservedExpansion) Validate() error {
	// Since this is implementation-specific, we don't validate the content
	return nil
}

// String returns a human-readable representation
func (r *ReservedExpansion) String() string {
	if len(r.Data) <= 1 {
		return "ReservedExpansion[empty]"
	}
	return fmt.Sprintf("ReservedExpansion[%d bytes]", len(r.Data)-1)
}
