// cat/cat011/cat011_test.go
package cat011_test

import (
	"testing"

	"github.com/surveillance-tools/panoramix/asterix"
	"github.com/surveillance-tools/panoramix/cat/cat011"
	v12 "github.com/surveillance-tools/panoramix/cat/cat011/dataitems/v12"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

func TestCat011UAP(t *testing.T) {
	uap, err := cat011.NewUAP(cat011.Version12)
	if err != nil {
		t.Fatalf("NewUAP() error = %v", err)
	}
	if uap.Category() != asterix.Cat011 {
		t.Errorf("Category() = %v, want Cat011", uap.Category())
	}
}

func TestCat011TrackNumberRoundTrip(t *testing.T) {
	uap, err := cat011.NewUAP(cat011.Version12)
	if err != nil {
		t.Fatalf("NewUAP() error = %v", err)
	}

	record, err := asterix.NewRecord(asterix.Cat011, uap)
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}

	if err := record.SetDataItem("I011/010", &common.DataSourceIdentifier{SAC: 1, SIC: 1}); err != nil {
		t.Fatalf("SetDataItem(I011/010): %v", err)
	}
	if err := record.SetDataItem("I011/000", &v12.MessageType{MessageType: 1}); err != nil {
		t.Fatalf("SetDataItem(I011/000): %v", err)
	}
	if err := record.SetDataItem("I011/161", &v12.TrackNumber{Value: 0x0ABC}); err != nil {
		t.Fatalf("SetDataItem(I011/161): %v", err)
	}

	block, err := asterix.NewDataBlock(asterix.Cat011, uap)
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

	records := msg.Records()
	if len(records) != 1 {
		t.Fatalf("Records() = %d, want 1", len(records))
	}
	tn, ok := records[0]["I011/161"].(*v12.TrackNumber)
	if !ok {
		t.Fatalf("I011/161 missing or wrong type in decoded record")
	}
	if tn.Value != 0x0ABC {
		t.Errorf("TrackNumber.Value = %#x, want %#x", tn.Value, 0x0ABC)
	}
}

func TestTrackNumberValidate(t *testing.T) {
	tn := &v12.TrackNumber{Value: 0x1000}
	if err := tn.Validate(); err == nil {
		t.Error("Validate() should reject a 13-bit value")
	}
}
