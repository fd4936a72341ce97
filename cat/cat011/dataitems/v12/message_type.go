// cat/cat011/dataitems/v12/message_type.go
package v12

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// MessageType represents I011/000 - Message Type
type MessageType struct {
	MessageType uint8 // 1=Target report, 2=Start of update cycle, 3=Periodic status message, 4=Event-triggered status message
}

func (m *MessageType) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte for message type, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	m.MessageType = buf.Next(1)[0]
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
		1: "Target Report",
		2: "Start of Update Cycle",
		3: "Periodic Status Message",
		4: "Event-triggered Status Message",
	}
	if name, ok := msgTypes[m.MessageType]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", m.MessageType)
}
