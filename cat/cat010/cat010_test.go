// cat/cat010/cat010_test.go
package cat010_test

import (
	"testing"

	"github.com/surveillance-tools/panoramix/asterix"
	"github.com/surveillance-tools/panoramix/cat/cat010"
	v12 "github.com/surveillance-tools/panoramix/cat/cat010/dataitems/v12"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

func TestCat010UAP(t *testing.T) {
	uap, err := cat010.NewUAP(cat010.Version12)
	if err != nil {
		t.Fatalf("NewUAP() error = %v", err)
	}
	if uap.Category() != asterix.Cat010 {
		t.Errorf("Category() = %v, want Cat010", uap.Category())
	}
	if uap.Version() != "1.2" {
		t.Errorf("Version() = %q, want 1.2", uap.Version())
	}
}

func TestCat010EncodeDecode(t *testing.T) {
	uap, err := cat010.NewUAP(cat010.Version12)
	if err != nil {
		t.Fatalf("NewUAP() error = %v", err)
	}

	record, err := asterix.NewRecord(asterix.Cat010, uap)
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}

	if err := record.SetDataItem("I010/010", &common.DataSourceIdentifier{SAC: 10, SIC: 20}); err != nil {
		t.Fatalf("SetDataItem(I010/010): %v", err)
	}
	if err := record.SetDataItem("I010/000", &v12.MessageType{MessageType: 1}); err != nil {
		t.Fatalf("SetDataItem(I010/000): %v", err)
	}
	if err := record.SetDataItem("I010/140", &common.TimeOfDay{TimeOfDay: 43200.0}); err != nil {
		t.Fatalf("SetDataItem(I010/140): %v", err)
	}

	block, err := asterix.NewDataBlock(asterix.Cat010, uap)
	if err != nil {
		t.Fatalf("NewDataBlock() error = %v", err)
	}
	if err := block.AddRecord(record); err != nil {
		t.Fatalf("AddRecord() error = %v", err)
	}

	encoded, err := block.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoder, err := asterix.NewDecoder(uap)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	msg, err := decoder.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if msg.Category != asterix.Cat010 {
		t.Errorf("Category = %v, want Cat010", msg.Category)
	}
	if len(msg.Records()) != 1 {
		t.Fatalf("Records() = %d, want 1", len(msg.Records()))
	}
}
