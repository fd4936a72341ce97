// dataitems/cat062/special_purpose.go
package v120

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// SpecialPurpose implements "SP062"
// Implementation-specific or non-standard data that doesn't fit within
// the standard ASTERIX data items.
type SpecialPurpose struct {
	Data []byte
}

// Decode parses an ASTERIX Category 062 Special Purpose field from the buffer.
// The length byte includes itself, so the payload is lenByte-1 bytes.
func (sp *SpecialPurpose) Decode(buf *bytes.Buffer) (int, error) {
	lenByte, err := wire.TakeByte(buf, "Special Purpose length")
	if err != nil {
		return 0, err
	}

	dataLen := int(lenByte) - 1
	if dataLen < 0 {
		return 1, fmt.Errorf("invalid Special Purpose length: %d", lenByte)
	}

	data, err := wire.Take(buf, dataLen, "Special Purpose data")
	if err != nil {
		return 1, err
	}
	sp.Data = append([]byte(nil), data...)

	return 1 + dataLen, nil
}

// Encode serializes the Special Purpose field into the buffer
func (sp *SpecialPurpose) Encode(buf *bytes.Buffer) (int, error) {
	if sp.Data == nil {
		// Empty SP field - just write a length of 1 (the length byte itself)
		buf.WriteByte(1)
		return 1, nil
	}

	totalLen := len(sp.Data) + 1
	if totalLen > 255 {
		return 0, fmt.Errorf("Special Purpose data too large: %d bytes (max 254)", len(sp.Data))
	}

	buf.WriteByte(byte(totalLen))
	n, err := buf.Write(sp.Data)
	if err != nil {
		return 1, fmt.Errorf("writing Special Purpose data: %w", err)
	}

	return 1 + n, nil
}

// String returns a human-readable representation of the Special Purpose field
func (sp *SpecialPurpose) String() string {
	if len(sp.Data) == 0 {
		return "SP[empty]"
	}

	return fmt.Sprintf("SP[%d bytes: %s]", len(sp.Data), hex.EncodeToString(sp.Data))
}

// Validate performs basic validation on the Special Purpose field
func (sp *SpecialPurpose) Validate() error {
	if len(sp.Data) > 254 {
		return fmt.Errorf("Special Purpose data too large: %d bytes (max 254)", len(sp.Data))
	}

	return nil
}
