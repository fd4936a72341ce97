// cat/cat063/dataitems/v16/reserved_expansion.go
package v16

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// ReservedExpansion implements "RE063"
// Reserved for future expansion or for specific applications
type ReservedExpansion struct {
	Data []byte
}

func (r *ReservedExpansion) Decode(buf *bytes.Buffer) (int, error) {
	// First byte is length indicator
	lenByte, err := wire.TakeByte(buf, "reserved expansion length")
	if err != nil {
		return 0, err
	}

	// Length is in octets, including the length indicator itself
	length := int(lenByte)
	if length < 1 {
		return 1, fmt.Errorf("invalid reserved expansion length: %d", length)
	}

	// Remaining is length - 1 (we've already read the length indicator)
	remaining := length - 1
	if remaining > 0 {
		data, err := wire.Take(buf, remaining, "reserved expansion data")
		if err != nil {
			return 1, err
		}

		// Store length byte and data
		r.Data = append([]byte{lenByte}, data...)
		return 1 + remaining, nil
	}

	// Just store the length byte if no additional data
	r.Data = []byte{lenByte}
	return 1, nil
}

func (r *ReservedExpansion) Encode(buf *bytes.Buffer) (int, error) {
	if len(r.Data) == 0 {
		// If no data, encode a minimal valid value (length = 1, just the length byte)
		return buf.Write([]byte{1})
	}

	return buf.Write(r.Data)
}

func (r *ReservedExpansion) Validate() error {
	// Basic validation to ensure the length byte matches the actual length of data
	if len(r.Data) > 0 {
		declaredLen := int(r.Data[0])
		if declaredLen != len(r.Data) {
			return fmt.Errorf("reserved expansion length mismatch: declared %d, actual %d",
				declaredLen, len(r.Data))
		}
	}
	return nil
}

func (r *ReservedExpansion) String() string {
	if len(r.Data) <= 1 {
		return "ReservedExpansion[empty]"
	}
	return fmt.Sprintf("ReservedExpansion[%d bytes]", len(r.Data)-1)
}
