// asterix/validation_test.go
package asterix

import (
	"encoding/binary"
	"errors"
	"testing"
)

func buildMessage(cat Category, fspecBytes []byte, body []byte) []byte {
	buf := make([]byte, 3, 3+len(fspecBytes)+len(body))
	buf[0] = byte(cat)
	buf = append(buf, fspecBytes...)
	buf = append(buf, body...)
	binary.BigEndian.PutUint16(buf[1:3], uint16(len(buf)))
	return buf
}

func TestNewMessageValidator(t *testing.T) {
	v := NewMessageValidator()
	if v.MaxFSPECExtensions != 8 {
		t.Errorf("MaxFSPECExtensions = %d, want 8", v.MaxFSPECExtensions)
	}
	if v.MaxMessageSize != 16384 {
		t.Errorf("MaxMessageSize = %d, want 16384", v.MaxMessageSize)
	}
}

func TestValidateMessageStructureValid(t *testing.T) {
	v := NewMessageValidator()
	data := buildMessage(Cat021, []byte{0x80}, []byte{0xAA})

	cat, err := v.ValidateMessageStructure(data)
	if err != nil {
		t.Fatalf("ValidateMessageStructure() error = %v", err)
	}
	if cat != Cat021 {
		t.Errorf("category = %v, want Cat021", cat)
	}
}

func TestValidateMessageStructureTooShort(t *testing.T) {
	v := NewMessageValidator()
	if _, err := v.ValidateMessageStructure([]byte{0x15, 0x00}); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("got %v, want ErrInvalidMessage", err)
	}
}

func TestValidateMessageStructureInvalidCategory(t *testing.T) {
	v := NewMessageValidator()
	data := buildMessage(Category(0), []byte{0x80}, []byte{0xAA})
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("got %v, want ErrInvalidCategory", err)
	}
}

func TestValidateMessageStructureLengthMismatch(t *testing.T) {
	v := NewMessageValidator()
	data := buildMessage(Cat021, []byte{0x80}, []byte{0xAA})
	data[2]++ // declare a length one byte longer than actual
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("got %v, want ErrInvalidLength", err)
	}
}

func TestValidateMessageStructureExceedsMax(t *testing.T) {
	v := NewMessageValidator()
	v.MaxMessageSize = 4
	data := buildMessage(Cat021, []byte{0x80}, []byte{0xAA, 0xBB})
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("got %v, want ErrInvalidLength", err)
	}
}

func TestValidateMessageStructureNoFSPEC(t *testing.T) {
	v := NewMessageValidator()
	data := []byte{byte(Cat021), 0x00, 0x03}
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("got %v, want ErrInvalidMessage", err)
	}
}

func TestValidateMessageStructureEmptyFSPEC(t *testing.T) {
	v := NewMessageValidator()
	// No data bits set at all, single FSPEC byte.
	data := buildMessage(Cat021, []byte{0x00}, nil)
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrInvalidFSPEC) {
		t.Errorf("got %v, want ErrInvalidFSPEC", err)
	}
}

func TestValidateMessageStructureTruncatedExtension(t *testing.T) {
	v := NewMessageValidator()
	// FX bit set on the last byte with nothing following.
	data := buildMessage(Cat021, []byte{0x81}, nil)
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrTruncated) {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestValidateMessageStructureTooManyExtensions(t *testing.T) {
	v := NewMessageValidator()
	v.MaxFSPECExtensions = 2
	// Three chained FSPEC bytes, all with FX set except the last.
	data := buildMessage(Cat021, []byte{0x81, 0x81, 0x80}, nil)
	if _, err := v.ValidateMessageStructure(data); !errors.Is(err, ErrFspecTooLong) {
		t.Errorf("got %v, want ErrFspecTooLong", err)
	}
}

func TestValidateMessageStructureFXChain(t *testing.T) {
	v := NewMessageValidator()
	data := buildMessage(Cat021, []byte{0x81, 0x80}, []byte{0xAA})
	if _, err := v.ValidateMessageStructure(data); err != nil {
		t.Errorf("ValidateMessageStructure() error = %v", err)
	}
}

func TestAnalyzeTooShort(t *testing.T) {
	result := Analyze([]byte{0x15})
	if result.Valid {
		t.Error("Analyze should mark a too-short message invalid")
	}
}

func TestAnalyzeValid(t *testing.T) {
	data := buildMessage(Cat021, []byte{0x80}, []byte{0xAA})
	result := Analyze(data)

	if result.Category != Cat021 {
		t.Errorf("category = %v, want %d", result.Category, Cat021)
	}
	if result.ActualLength != len(data) {
		t.Errorf("actual_length = %v, want %d", result.ActualLength, len(data))
	}
	if !result.Valid {
		t.Errorf("expected valid message, got %+v", result)
	}
	if result.FSPECDataBits != 1 {
		t.Errorf("FSPECDataBits = %v, want 1", result.FSPECDataBits)
	}
}

func TestAnalyzeNoDataBits(t *testing.T) {
	data := buildMessage(Cat021, []byte{0x00}, nil)
	result := Analyze(data)

	if result.Valid {
		t.Error("expected invalid message when FSPEC has no data bits")
	}
	if len(result.Problems) == 0 {
		t.Error("expected Problems to be populated")
	}
}

func TestAnalyzeTruncatedExtension(t *testing.T) {
	data := buildMessage(Cat021, []byte{0x81}, nil)
	result := Analyze(data)

	if result.Valid {
		t.Error("expected invalid message for a truncated FSPEC extension")
	}
	if !result.FSPECTruncated {
		t.Error("expected FSPECTruncated to be set")
	}
}
