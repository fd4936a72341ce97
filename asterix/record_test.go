// asterix/record_test.go
package asterix

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// FixedLength reports the byte length MockDataItem decodes/encodes.
func (m *MockDataItem) FixedLength() int {
	return m.fixedLen
}

func setupTestRecord() (*Record, *MockUAP, error) {
	uap := &MockUAP{
		category: Cat021,
		version:  "1.0",
		fields: []DataField{
			{FRN: 1, DataItem: "I021/010", Description: "Data Source Identifier", Type: Fixed, Length: 2, Mandatory: true},
			{FRN: 2, DataItem: "I021/040", Description: "Target Report Descriptor", Type: Fixed, Length: 1, Mandatory: true},
			{FRN: 3, DataItem: "I021/030", Description: "Time of Day", Type: Fixed, Length: 3, Mandatory: false},
		},
	}

	record, err := NewRecord(Cat021, uap)
	if err != nil {
		return nil, nil, err
	}
	return record, uap, nil
}

func TestNewRecord(t *testing.T) {
	_, uap, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if _, err := NewRecord(Cat021, uap); err != nil {
		t.Errorf("NewRecord with valid parameters failed: %v", err)
	}
	if _, err := NewRecord(Category(0), uap); err == nil {
		t.Error("NewRecord with invalid category should fail")
	}
	if _, err := NewRecord(Cat021, nil); err == nil {
		t.Error("NewRecord with nil UAP should fail")
	}
	if _, err := NewRecord(Cat048, uap); err == nil {
		t.Error("NewRecord with mismatched category should fail")
	}
}

func TestRecordSetGetDataItem(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	item1 := &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2}
	if err := record.SetDataItem("I021/010", item1); err != nil {
		t.Errorf("SetDataItem failed: %v", err)
	}

	item2 := &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1}
	if err := record.SetDataItem("I021/040", item2); err != nil {
		t.Errorf("SetDataItem failed: %v", err)
	}

	got, _, exists := record.GetDataItem("I021/010")
	if !exists {
		t.Error("GetDataItem should find I021/010")
	}
	if got != item1 {
		t.Error("GetDataItem returned wrong item")
	}

	if _, _, exists := record.GetDataItem("I021/999"); exists {
		t.Error("GetDataItem should not find unknown item")
	}

	if err := record.SetDataItem("I021/999", item1); err == nil {
		t.Error("SetDataItem with unknown ID should fail")
	}
	if err := record.SetDataItem("I021/010", nil); err == nil {
		t.Error("SetDataItem with nil item should fail")
	}

	invalidItem := &MockDataItem{id: "I021/010", validateErr: fmt.Errorf("validation failed")}
	if err := record.SetDataItem("I021/010", invalidItem); err == nil {
		t.Error("SetDataItem with invalid item should fail")
	}
}

func TestRecordEncodeDecode(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	mustSet := func(r *Record, id string, item DataItem) {
		t.Helper()
		if err := r.SetDataItem(id, item); err != nil {
			t.Fatalf("SetDataItem(%s): %v", id, err)
		}
	}

	mustSet(record, "I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2})
	mustSet(record, "I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1})
	mustSet(record, "I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, 0xEE, 0xFF}, fixedLen: 3})

	buf := new(bytes.Buffer)
	n, err := record.Encode(buf)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	const expectedSize = 7 // FSPEC(1) + item1(2) + item2(1) + item3(3)
	if n != expectedSize {
		t.Errorf("Encode wrote %d bytes, want %d", n, expectedSize)
	}

	newRecord, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	n, err = newRecord.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != expectedSize {
		t.Errorf("Decode read %d bytes, want %d", n, expectedSize)
	}

	for _, id := range []string{"I021/010", "I021/040", "I021/030"} {
		if _, _, exists := newRecord.GetDataItem(id); !exists {
			t.Errorf("decoded record missing %s", id)
		}
	}
	if len(newRecord.Items()) != 3 {
		t.Errorf("decoded record has %d items, want 3", len(newRecord.Items()))
	}
}

func TestRecordEncodeMissingMandatory(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	buf := new(bytes.Buffer)
	_, err = record.Encode(buf)
	if !errors.Is(err, ErrMandatoryField) {
		t.Errorf("Encode with missing mandatory field: got %v, want ErrMandatoryField", err)
	}
}

func TestRecordEncodeFSPECMismatch(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}
	if err := record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}
	if err := record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}
	if err := record.SetDataItem("I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, 0xEE, 0xFF}, fixedLen: 3}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}

	// FSPEC bit for I021/030 stays set even though the item is removed.
	delete(record.items, "I021/030")

	buf := new(bytes.Buffer)
	if _, err := record.Encode(buf); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Encode with FSPEC/item mismatch: got %v, want ErrInvalidMessage", err)
	}
}

func TestRecordDecodeErrors(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	// Empty buffer.
	buf := new(bytes.Buffer)
	if _, err := record.Decode(buf); err == nil {
		t.Error("Decode with empty buffer should fail")
	}

	// FX bit set on the only octet FSPEC_max allows (FRN_max is 3 here, so
	// FSPEC_max is 1): the chain is over-long.
	buf = bytes.NewBuffer([]byte{0x01})
	if _, err := record.Decode(buf); !errors.Is(err, ErrFspecTooLong) {
		t.Errorf("Decode with FX set at FSPEC_max: got %v, want ErrFspecTooLong", err)
	}

	// Item creation error: UAP has no descriptor for the occupied FRN.
	record, mockUAP, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}
	mockUAP.fields = mockUAP.fields[1:] // drop FRN 1's descriptor
	buf = bytes.NewBuffer([]byte{0x80}) // FSPEC with FRN 1 set
	_, err = record.Decode(buf)
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Errorf("Decode with undefined FRN: got %v, want *RecordError", err)
	}

	// Item with a decode error bubbles up wrapped as *RecordError.
	record, mockUAP, err = setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}
	mockUAP.createItemFunc = func(id string) (DataItem, error) {
		return &MockDataItem{id: id, fixedLen: 2, decodeErr: fmt.Errorf("decode error")}, nil
	}
	buf = bytes.NewBuffer([]byte{0x80, 0x01, 0x02})
	_, err = record.Decode(buf)
	if !errors.As(err, &recErr) {
		t.Errorf("Decode with item decode error: got %v, want *RecordError", err)
	}
}

func TestRecordEstimateSize(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if size := record.EstimateSize(); size != 0 {
		t.Errorf("empty record size estimate = %d, want 0", size)
	}

	if err := record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}
	if err := record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}

	if size := record.EstimateSize(); size < 4 { // FSPEC(1) + item1(2) + item2(1)
		t.Errorf("size estimate = %d, want at least 4", size)
	}
}

func TestRecordGetters(t *testing.T) {
	record, _, err := setupTestRecord()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if err := record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}
	if err := record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1}); err != nil {
		t.Fatalf("SetDataItem: %v", err)
	}

	if record.Category() != Cat021 {
		t.Errorf("Category() = %v, want %v", record.Category(), Cat021)
	}
	if record.FSPEC() == nil {
		t.Error("FSPEC() should not return nil")
	}

	items := record.Items()
	if len(items) != 2 {
		t.Errorf("Items() returned %d items, want 2", len(items))
	}
	if _, exists := items["I021/010"]; !exists {
		t.Error("Items() missing I021/010")
	}
	if _, exists := items["I021/040"]; !exists {
		t.Error("Items() missing I021/040")
	}
}

func BenchmarkRecordEncode(b *testing.B) {
	record, _, err := setupTestRecord()
	if err != nil {
		b.Fatalf("failed to set up test: %v", err)
	}
	record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2})
	record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1})
	record.SetDataItem("I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, 0xEE, 0xFF}, fixedLen: 3})

	buf := new(bytes.Buffer)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf.Reset()
		record.Encode(buf)
	}
}

func BenchmarkRecordDecode(b *testing.B) {
	record, _, err := setupTestRecord()
	if err != nil {
		b.Fatalf("failed to set up test: %v", err)
	}
	record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2})
	record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1})
	record.SetDataItem("I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, 0xEE, 0xFF}, fixedLen: 3})

	buf := new(bytes.Buffer)
	if _, err := record.Encode(buf); err != nil {
		b.Fatalf("failed to encode record: %v", err)
	}
	data := buf.Bytes()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		newRecord, _, err := setupTestRecord()
		if err != nil {
			b.Fatalf("failed to set up test: %v", err)
		}
		newRecord.Decode(bytes.NewBuffer(data))
	}
}
