// asterix/datablock_test.go
package asterix

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func setupTestDataBlock() (*DataBlock, *MockUAP, error) {
	uap := &MockUAP{
		category: Cat021,
		version:  "1.0",
		fields: []DataField{
			{FRN: 1, DataItem: "I021/010", Description: "Data Source Identifier", Type: Fixed, Length: 2, Mandatory: true},
			{FRN: 2, DataItem: "I021/040", Description: "Target Report Descriptor", Type: Fixed, Length: 1, Mandatory: true},
			{FRN: 3, DataItem: "I021/030", Description: "Time of Day", Type: Fixed, Length: 3, Mandatory: false},
		},
	}

	dataBlock, err := NewDataBlock(Cat021, uap)
	if err != nil {
		return nil, nil, err
	}
	return dataBlock, uap, nil
}

func createTestRecord(t *testing.T, dataBlock *DataBlock) *Record {
	t.Helper()
	record, err := NewRecord(dataBlock.Category(), dataBlock.UAP())
	if err != nil {
		t.Fatalf("failed to create record: %v", err)
	}

	if err := record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2}); err != nil {
		t.Fatalf("failed to set data item: %v", err)
	}
	if err := record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1}); err != nil {
		t.Fatalf("failed to set data item: %v", err)
	}

	return record
}

func hasItem(r *Record, id string) bool {
	_, _, exists := r.GetDataItem(id)
	return exists
}

func TestNewDataBlock(t *testing.T) {
	_, uap, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if _, err := NewDataBlock(Cat021, uap); err != nil {
		t.Errorf("NewDataBlock with valid parameters failed: %v", err)
	}
	if _, err := NewDataBlock(Category(0), uap); err == nil {
		t.Error("NewDataBlock with invalid category should fail")
	}
	if _, err := NewDataBlock(Cat021, nil); err == nil {
		t.Error("NewDataBlock with nil UAP should fail")
	}
	if _, err := NewDataBlock(Cat048, uap); err == nil {
		t.Error("NewDataBlock with mismatched category should fail")
	}
}

func TestDataBlockAddRecord(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	record := createTestRecord(t, dataBlock)
	if err := dataBlock.AddRecord(record); err != nil {
		t.Errorf("AddRecord failed: %v", err)
	}
	if err := dataBlock.AddRecord(nil); err == nil {
		t.Error("AddRecord with nil record should fail")
	}

	wrongCatUAP := &MockUAP{category: Cat048, version: "1.0"}
	wrongCatRecord, err := NewRecord(Cat048, wrongCatUAP)
	if err != nil {
		t.Fatalf("failed to create record with wrong category: %v", err)
	}
	if err := dataBlock.AddRecord(wrongCatRecord); err == nil {
		t.Error("AddRecord with mismatched category should fail")
	}
}

func TestDataBlockRecords(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := dataBlock.AddRecord(createTestRecord(t, dataBlock)); err != nil {
			t.Fatalf("failed to add record: %v", err)
		}
	}

	records := dataBlock.Records()
	if len(records) != 3 {
		t.Errorf("Records() returned %d records, want 3", len(records))
	}

	originalCount := dataBlock.RecordCount()
	records = append(records, records[0])
	if dataBlock.RecordCount() != originalCount {
		t.Error("Records() should return a copy, not the original")
	}
}

func TestDataBlockEncodeDecode(t *testing.T) {
	testCases := []struct {
		name       string
		numRecords int
		blockable  bool
	}{
		{"single record, non-blockable", 1, false},
		{"single record, blockable", 1, true},
		{"multiple records, non-blockable", 3, false},
		{"multiple records, blockable", 3, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dataBlock, _, err := setupTestDataBlock()
			if err != nil {
				t.Fatalf("failed to set up test: %v", err)
			}
			dataBlock.SetBlockable(tc.blockable)

			for i := 0; i < tc.numRecords; i++ {
				record := createTestRecord(t, dataBlock)
				if i%2 == 0 {
					if err := record.SetDataItem("I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, byte(i), 0xFF}, fixedLen: 3}); err != nil {
						t.Fatalf("failed to set data item: %v", err)
					}
				}
				if err := dataBlock.AddRecord(record); err != nil {
					t.Fatalf("failed to add record: %v", err)
				}
			}

			data, err := dataBlock.Encode()
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if len(data) < 3 {
				t.Fatalf("encoded data too short: %d bytes", len(data))
			}
			if Category(data[0]) != Cat021 {
				t.Errorf("encoded category = %d, want %d", data[0], Cat021)
			}
			if length := binary.BigEndian.Uint16(data[1:3]); int(length) != len(data) {
				t.Errorf("encoded length = %d, actual length = %d", length, len(data))
			}

			newDataBlock, _, err := setupTestDataBlock()
			if err != nil {
				t.Fatalf("failed to set up test: %v", err)
			}
			if err := newDataBlock.Decode(data); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if newDataBlock.RecordCount() != tc.numRecords {
				t.Errorf("decoded block has %d records, want %d", newDataBlock.RecordCount(), tc.numRecords)
			}

			for i, record := range newDataBlock.Records() {
				if !hasItem(record, "I021/010") {
					t.Errorf("record %d missing I021/010", i)
				}
				if !hasItem(record, "I021/040") {
					t.Errorf("record %d missing I021/040", i)
				}
				if i%2 == 0 && !hasItem(record, "I021/030") {
					t.Errorf("record %d missing optional item I021/030", i)
				}
			}
		})
	}
}

func TestDataBlockEncodeToDecodeFrom(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if err := dataBlock.AddRecord(createTestRecord(t, dataBlock)); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	buf := new(bytes.Buffer)
	if err := dataBlock.EncodeTo(buf); err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}

	newDataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}
	if err := newDataBlock.DecodeFrom(buf); err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if newDataBlock.RecordCount() != 1 {
		t.Errorf("decoded block has %d records, want 1", newDataBlock.RecordCount())
	}
}

func TestDataBlockDecodeErrors(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if err := dataBlock.Decode([]byte{0x15}); err == nil {
		t.Error("Decode with too-short data should fail")
	}
	if err := dataBlock.Decode([]byte{0x10, 0x00, 0x03}); err == nil {
		t.Error("Decode with wrong category should fail")
	}
	if err := dataBlock.Decode([]byte{0x15, 0x00, 0x20, 0x01, 0x02}); err == nil {
		t.Error("Decode with bad LEN should fail")
	}
	if err := dataBlock.Decode([]byte{0x15, 0x00, 0x05, 0x01, 0x01}); err == nil {
		t.Error("Decode with invalid record content should fail")
	}
}

func TestDataBlockDecodeFromErrors(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if err := dataBlock.DecodeFrom(strings.NewReader("")); err == nil {
		t.Error("DecodeFrom with EOF on header should fail")
	}
	if err := dataBlock.DecodeFrom(bytes.NewBuffer([]byte{0x10, 0x00, 0x03})); err == nil {
		t.Error("DecodeFrom with wrong category should fail")
	}
	if err := dataBlock.DecodeFrom(bytes.NewBuffer([]byte{0x15, 0x00, 0x02})); err == nil {
		t.Error("DecodeFrom with LEN too small should fail")
	}
	if err := dataBlock.DecodeFrom(bytes.NewBuffer([]byte{0x15, 0x00, 0x10})); err == nil {
		t.Error("DecodeFrom with EOF on body should fail")
	}
}

func TestDataBlockClear(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := dataBlock.AddRecord(createTestRecord(t, dataBlock)); err != nil {
			t.Fatalf("failed to add record: %v", err)
		}
	}

	dataBlock.Clear()
	if dataBlock.RecordCount() != 0 {
		t.Errorf("after Clear(), record count = %d, want 0", dataBlock.RecordCount())
	}
}

func TestDataBlockEstimateSize(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if size := dataBlock.EstimateSize(); size != 3 {
		t.Errorf("empty data block size estimate = %d, want 3", size)
	}

	for i := 0; i < 3; i++ {
		if err := dataBlock.AddRecord(createTestRecord(t, dataBlock)); err != nil {
			t.Fatalf("failed to add record: %v", err)
		}
	}

	if size := dataBlock.EstimateSize(); size <= 3 {
		t.Errorf("size estimate = %d, should be > 3 for non-empty block", size)
	}
}

func TestDataBlockEncodeRecord(t *testing.T) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	items := map[string]DataItem{
		"I021/010": &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2},
		"I021/040": &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1},
		"I021/030": &MockDataItem{id: "I021/030", data: []byte{0xDD, 0xEE, 0xFF}, fixedLen: 3},
	}

	if err := dataBlock.EncodeRecord(items); err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	if dataBlock.RecordCount() != 1 {
		t.Errorf("after EncodeRecord(), record count = %d, want 1", dataBlock.RecordCount())
	}

	record := dataBlock.Records()[0]
	for _, id := range []string{"I021/010", "I021/040", "I021/030"} {
		if !hasItem(record, id) {
			t.Errorf("record missing %s", id)
		}
	}

	invalidItems := map[string]DataItem{
		"I021/999": &MockDataItem{id: "I021/999", data: []byte{0xAA, 0xBB}, fixedLen: 2},
	}
	if err := dataBlock.EncodeRecord(invalidItems); err == nil {
		t.Error("EncodeRecord with invalid item should fail")
	}
}

func TestDataBlockGetters(t *testing.T) {
	dataBlock, uap, err := setupTestDataBlock()
	if err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}

	if dataBlock.Category() != Cat021 {
		t.Errorf("Category() = %v, want %v", dataBlock.Category(), Cat021)
	}
	if dataBlock.UAP() != uap {
		t.Errorf("UAP() = %v, want %v", dataBlock.UAP(), uap)
	}

	if !dataBlock.Blockable() {
		t.Error("Blockable() should be true for Cat021")
	}
	dataBlock.SetBlockable(false)
	if dataBlock.Blockable() {
		t.Error("Blockable() should be false after SetBlockable(false)")
	}
}

func BenchmarkDataBlockEncode(b *testing.B) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		b.Fatalf("failed to set up test: %v", err)
	}

	for i := 0; i < 10; i++ {
		record, err := NewRecord(dataBlock.Category(), dataBlock.UAP())
		if err != nil {
			b.Fatalf("failed to create record: %v", err)
		}
		record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2})
		record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1})
		if i%2 == 0 {
			record.SetDataItem("I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, byte(i), 0xFF}, fixedLen: 3})
		}
		if err := dataBlock.AddRecord(record); err != nil {
			b.Fatalf("failed to add record: %v", err)
		}
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dataBlock.Encode(); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

func BenchmarkDataBlockDecode(b *testing.B) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		b.Fatalf("failed to set up test: %v", err)
	}

	for i := 0; i < 10; i++ {
		record, err := NewRecord(dataBlock.Category(), dataBlock.UAP())
		if err != nil {
			b.Fatalf("failed to create record: %v", err)
		}
		record.SetDataItem("I021/010", &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2})
		record.SetDataItem("I021/040", &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1})
		if i%2 == 0 {
			record.SetDataItem("I021/030", &MockDataItem{id: "I021/030", data: []byte{0xDD, byte(i), 0xFF}, fixedLen: 3})
		}
		if err := dataBlock.AddRecord(record); err != nil {
			b.Fatalf("failed to add record: %v", err)
		}
	}

	data, err := dataBlock.Encode()
	if err != nil {
		b.Fatalf("failed to encode data block: %v", err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		newDataBlock, _, err := setupTestDataBlock()
		if err != nil {
			b.Fatalf("failed to set up test: %v", err)
		}
		if err := newDataBlock.Decode(data); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

func BenchmarkDataBlockEncodeRecord(b *testing.B) {
	dataBlock, _, err := setupTestDataBlock()
	if err != nil {
		b.Fatalf("failed to set up test: %v", err)
	}

	items := map[string]DataItem{
		"I021/010": &MockDataItem{id: "I021/010", data: []byte{0xAA, 0xBB}, fixedLen: 2},
		"I021/040": &MockDataItem{id: "I021/040", data: []byte{0xCC}, fixedLen: 1},
		"I021/030": &MockDataItem{id: "I021/030", data: []byte{0xDD, 0xEE, 0xFF}, fixedLen: 3},
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dataBlock.Clear()
		if err := dataBlock.EncodeRecord(items); err != nil {
			b.Fatalf("EncodeRecord failed: %v", err)
		}
	}
}
