package v10

import (
	"bytes"
	"fmt"

	wire "github.com/surveillance-tools/panoramix/cat/common/wire"
)

// MessageType represents I002/000 - Message Type
type MessageType struct {
	MessageType uint8 // 1=North marker, 2=Sector crossing, 3=South marker, 8=Activation of blind zone, 9=Stop of blind zone
}

func (m *MessageType) Decode(buf *bytes.Buffer) (int, error) {
	b, err := wire.TakeByte(buf, "message type")
	if err != nil {
		return 0, err
	}
	m.MessageType = b
	return 1, nil
}

func (m *MessageType) Encode(buf *bytes.Buffer) (int, error) {
	buf.WriteByte(m.MessageType)
	return 1, nil
}

func (m *MessageType) Validate() error {
	return nil
}

func (m *MessageType) String() string {
	msgTypes := map[uint8]string{
		1: "North marker",
		2: "Sector crossing",
		3: "South marker",
		8: "Activation of blind zone filtering",
		9: "Stop of blind zone filtering",
	}
	if name, ok := msgTypes[m.MessageType]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", m.MessageType)
}
