// cat/cat023/dataitems/v126/reserved_expansion.go
package v126

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// ReservedExpansion implements RE023, the Reserved Expansion Field.
type ReservedExpansion struct {
	Data []byte
}

// Decode implements the DataItem interface.
func (r *ReservedExpansion) Decode(buf *bytes.Buffer) (int, error) {
	lenByte, err := wire.TakeByte(buf, "reserved expansion length")
	if err != nil {
		return 0, err
	}

	length := int(lenByte)
	data, err := wire.Take(buf, length, "reserved expansion data")
	if err != nil {
		return 1, err
	}

	r.Data = append([]byte{lenByte}, data...)
	return 1 + length, nil
}

// Encode implements the DataItem interface.
func (r *ReservedExpansion) Encode(buf *bytes.Buffer) (int, error) {
	if len(r.Data) == 0 {
		return buf.Write([]byte{0})
	}
	return buf.Write(r.Data)
}

// Validate implements the DataItem interface.
func (r *ReservedExpansion) Validate() error {
	return nil
}

// String returns a string representation.
func (r *ReservedExpansion) String() string {
	return fmt.Sprintf("RE023 (%d bytes)", len(r.Data))
}
