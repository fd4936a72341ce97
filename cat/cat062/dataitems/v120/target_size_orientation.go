// dataitems/cat062/target_size_orientation.go
package v120

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TargetSizeOrientation implements I062/270
// Variable length data item comprising a first part of one octet,
// followed by one-octet extents as necessary.
type TargetSizeOrientation struct {
	Data []byte
}

func (t *TargetSizeOrientation) Decode(buf *bytes.Buffer) (int, error) {
	bytesRead := 0
	t.Data = nil

	b, err := wire.TakeByte(buf, "target size orientation first byte")
	if err != nil {
		return bytesRead, err
	}
	bytesRead++
	t.Data = append(t.Data, b)

	hasExtension := (b & 0x01) != 0
	if hasExtension {
		b, err = wire.TakeByte(buf, "target size orientation first extension")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++
		t.Data = append(t.Data, b)

		hasExtension = (b & 0x01) != 0
		if hasExtension {
			b, err = wire.TakeByte(buf, "target size orientation second extension")
			if err != nil {
				return bytesRead, err
			}
			bytesRead++
			t.Data = append(t.Data, b)

			// There are no further extensions according to the spec
		}
	}

	return bytesRead, nil
}

func (t *TargetSizeOrientation) Encode(buf *bytes.Buffer) (int, error) {
	if len(t.Data) == 0 {
		// If no data, encode a minimal valid value
		return buf.Write([]byte{0})
	}
	return buf.Write(t.Data)
}

func (t *TargetSizeOrientation) String() string {
	return fmt.Sprintf("TargetSizeOrientation[%d bytes]", len(t.Data))
}

func (t *TargetSizeOrientation) Validate() error {
	return nil
}
