// asterix/decoder_test.go
package asterix

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

func testUAP021() *MockUAP {
	return &MockUAP{
		category: Cat021,
		version:  "1.0",
		fields: []DataField{
			{FRN: 1, DataItem: "I021/010", Type: Fixed, Length: 2, Mandatory: true},
			{FRN: 2, DataItem: "I021/040", Type: Fixed, Length: 1, Mandatory: true},
			{FRN: 3, DataItem: "I021/030", Type: Fixed, Length: 3, Mandatory: false},
		},
	}
}

// createTestMessage builds a raw CAT+LEN+FSPEC+items block for Cat021.
func createTestMessage(itemData map[string][]byte) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 64))
	buf.WriteByte(byte(Cat021))
	buf.Write([]byte{0, 0})

	fspec := byte(0)
	for id := range itemData {
		switch id {
		case "I021/010":
			fspec |= 0x80
		case "I021/040":
			fspec |= 0x40
		case "I021/030":
			fspec |= 0x20
		}
	}
	buf.WriteByte(fspec)

	if data, ok := itemData["I021/010"]; ok {
		buf.Write(data)
	}
	if data, ok := itemData["I021/040"]; ok {
		buf.Write(data)
	}
	if data, ok := itemData["I021/030"]; ok {
		buf.Write(data)
	}

	binary.BigEndian.PutUint16(buf.Bytes()[1:3], uint16(buf.Len()))
	return buf.Bytes()
}

func TestNewDecoder(t *testing.T) {
	decoder, err := NewDecoder()
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	if decoder.Supports(Cat021) {
		t.Error("fresh decoder should not support any category")
	}

	uap := testUAP021()
	decoder, err = NewDecoder(uap)
	if err != nil {
		t.Fatalf("NewDecoder(uap) error = %v", err)
	}
	if !decoder.Supports(Cat021) {
		t.Error("decoder seeded with a Cat021 UAP should support Cat021")
	}

	if _, err := NewDecoder(nil); err == nil {
		t.Error("NewDecoder(nil) should fail")
	}
}

func TestDecoderRegisterUAP(t *testing.T) {
	decoder, err := NewDecoder()
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	if err := decoder.RegisterUAP(testUAP021()); err != nil {
		t.Fatalf("RegisterUAP failed: %v", err)
	}
	if !decoder.Supports(Cat021) {
		t.Error("decoder should support Cat021 after RegisterUAP")
	}
	if err := decoder.RegisterUAP(nil); err == nil {
		t.Error("RegisterUAP(nil) should fail")
	}
}

func TestDecoderCategories(t *testing.T) {
	decoder, err := NewDecoder(testUAP021())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	cats := decoder.Categories()
	if len(cats) != 1 || cats[0] != Cat021 {
		t.Errorf("Categories() = %v, want [Cat021]", cats)
	}
}

func TestDecoderDecode(t *testing.T) {
	decoder, err := NewDecoder(testUAP021())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	data := createTestMessage(map[string][]byte{
		"I021/010": {0x01, 0x02},
		"I021/040": {0xFF},
	})

	msg, err := decoder.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if msg.Category != Cat021 {
		t.Errorf("Category = %v, want %v", msg.Category, Cat021)
	}
	if len(msg.Records()) != 1 {
		t.Fatalf("Records() = %d, want 1", len(msg.Records()))
	}
}

func TestDecoderDecodeUnknownCategory(t *testing.T) {
	decoder, err := NewDecoder()
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	data := createTestMessage(map[string][]byte{"I021/010": {0x01, 0x02}})
	if _, err := decoder.Decode(data); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Decode with unregistered category: got %v, want ErrUnknownCategory", err)
	}
}

func TestDecoderDecodeTooShort(t *testing.T) {
	decoder, err := NewDecoder(testUAP021())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	if _, err := decoder.Decode([]byte{0x15, 0x00}); !errors.Is(err, ErrBadBlockLength) {
		t.Errorf("Decode with short data: got %v, want ErrBadBlockLength", err)
	}
}

func TestDecoderDecodeMalformedRecord(t *testing.T) {
	decoder, err := NewDecoder(testUAP021())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	// Valid header, but record body is missing its mandatory items.
	data := []byte{byte(Cat021), 0x00, 0x04, 0x00}
	_, err = decoder.Decode(data)
	var blockErr *BlockError
	if !errors.As(err, &blockErr) {
		t.Errorf("Decode with malformed record: got %v, want *BlockError", err)
	}
}

func TestDecoderDecodeWithContext(t *testing.T) {
	decoder, err := NewDecoder(testUAP021())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	ctx := NewDecodingContext()
	ctx.ResetFrame(time.Now(), 3)

	data := createTestMessage(map[string][]byte{
		"I021/010": {0x01, 0x02},
		"I021/040": {0xFF},
	})

	if _, err := decoder.DecodeWithContext(data, ctx); err != nil {
		t.Fatalf("DecodeWithContext failed: %v", err)
	}
}
