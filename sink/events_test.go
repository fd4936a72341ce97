// sink/events_test.go
package sink_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/surveillance-tools/panoramix/asterix"
	v126 "github.com/surveillance-tools/panoramix/cat/cat023/dataitems/v126"
	"github.com/surveillance-tools/panoramix/sink"
)

func asterixMessage(items map[string]asterix.DataItem) *asterix.AsterixMessage {
	uap, err := asterix.NewBaseUAP(asterix.Cat023, "test", map[uint8]string{1: "I023/000"})
	if err != nil {
		panic(err)
	}
	record, err := asterix.NewRecord(asterix.Cat023, uap)
	if err != nil {
		panic(err)
	}
	for id, item := range items {
		record.SetDataItem(id, item)
	}
	block, err := asterix.NewDataBlock(asterix.Cat023, uap)
	if err != nil {
		panic(err)
	}
	if err := block.AddRecord(record); err != nil {
		panic(err)
	}
	return &asterix.AsterixMessage{DataBlock: block, Timestamp: time.Unix(0, 0)}
}

func TestEventWriterDistinguishesRecordsWithSameString(t *testing.T) {
	// Bits 2-7 of octet 1 differ (reserved/unused for OperationalRelease's
	// String() output) but bit 8 (NOGO) and octet count are the same, so
	// both items render identical String() text.
	a := &v126.GroundStationStatus{Octets: []byte{0x80}}
	b := &v126.GroundStationStatus{Octets: []byte{0xFE}}

	if a.String() != b.String() {
		t.Fatalf("test setup invalid: String() differs (%q vs %q), want identical", a.String(), b.String())
	}

	var buf bytes.Buffer
	ew := sink.NewEventWriter(&buf)

	n1, err := ew.Write(0, asterixMessage(map[string]asterix.DataItem{"I023/100": a}))
	if err != nil {
		t.Fatalf("Write() 1st record error = %v", err)
	}
	n2, err := ew.Write(1, asterixMessage(map[string]asterix.DataItem{"I023/100": b}))
	if err != nil {
		t.Fatalf("Write() 2nd record error = %v", err)
	}

	if n1 != 1 || n2 != 1 {
		t.Fatalf("wrote %d and %d events, want 1 and 1 (fingerprints must not collide when raw bytes differ)", n1, n2)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSON lines, want 2", len(lines))
	}
	var e1, e2 sink.Event
	if err := json.Unmarshal([]byte(lines[0]), &e1); err != nil {
		t.Fatalf("unmarshal 1st event: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &e2); err != nil {
		t.Fatalf("unmarshal 2nd event: %v", err)
	}
	if e1.Fingerprint == e2.Fingerprint {
		t.Error("fingerprints collide for records whose raw bytes differ but String() output matches")
	}
}
