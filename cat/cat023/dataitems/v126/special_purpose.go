// cat/cat023/dataitems/v126/special_purpose.go
package v126

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// SpecialPurpose implements SP023, the Special Purpose Field.
type SpecialPurpose struct {
	Data []byte
}

// Decode implements the DataItem interface.
func (s *SpecialPurpose) Decode(buf *bytes.Buffer) (int, error) {
	lenByte, err := wire.TakeByte(buf, "special purpose length")
	if err != nil {
		return 0, err
	}

	length := int(lenByte)
	data, err := wire.Take(buf, length, "special purpose data")
	if err != nil {
		return 1, err
	}

	s.Data = append([]byte{lenByte}, data...)
	return 1 + length, nil
}

// Encode implements the DataItem interface.
func (s *SpecialPurpose) Encode(buf *bytes.Buffer) (int, error) {
	if len(s.Data) == 0 {
		return buf.Write([]byte{0})
	}
	return buf.Write(s.Data)
}

// Validate implements the DataItem interface.
func (s *SpecialPurpose) Validate() error {
	return nil
}

// String returns a string representation.
func (s *SpecialPurpose) String() string {
	return fmt.Sprintf("SP023 (%d bytes)", len(s.Data))
}
