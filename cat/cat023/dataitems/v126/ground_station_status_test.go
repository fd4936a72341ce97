// cat/cat023/dataitems/v126/ground_station_status_test.go
package v126_test

import (
	"bytes"
	"testing"

	v126 "github.com/surveillance-tools/panoramix/cat/cat023/dataitems/v126"
)

func TestGroundStationStatus_NOGOBit(t *testing.T) {
	tests := []struct {
		name     string
		octet    byte
		wantOper bool
	}{
		{"bit 8 clear: operationally released", 0x00, true},
		{"bit 8 set: NOGO, not released", 0x80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &v126.GroundStationStatus{}
			buf := bytes.NewBuffer([]byte{tt.octet})
			if _, err := g.Decode(buf); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if g.OperationalRelease != tt.wantOper {
				t.Errorf("OperationalRelease = %v, want %v (octet %#02x)", g.OperationalRelease, tt.wantOper, tt.octet)
			}
		})
	}
}

func TestGroundStationStatus_FXChain(t *testing.T) {
	g := &v126.GroundStationStatus{}
	// First octet has FX set (more octets follow), second clears it.
	buf := bytes.NewBuffer([]byte{0x81, 0x80})
	n, err := g.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Decode() n = %d, want 2", n)
	}
	if len(g.Octets) != 2 {
		t.Fatalf("Octets = %v, want 2 bytes", g.Octets)
	}
	// Bit 8 of octet 1 (0x81) is set: NOGO, not released.
	if g.OperationalRelease {
		t.Error("OperationalRelease = true, want false (octet 1 has NOGO bit set)")
	}
}

func TestGroundStationStatus_EncodeRoundTrip(t *testing.T) {
	original := &v126.GroundStationStatus{Octets: []byte{0x80}}

	buf := new(bytes.Buffer)
	if _, err := original.Encode(buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded := &v126.GroundStationStatus{}
	if _, err := decoded.Decode(buf); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// Octet 0x80 has the NOGO bit set, so the decoded station must not be
	// reported as operationally released.
	if decoded.OperationalRelease {
		t.Error("OperationalRelease = true, want false (encoded octet has NOGO bit set)")
	}
}

func TestGroundStationStatus_EncodeFromFieldWithoutOctets(t *testing.T) {
	tests := []struct {
		name     string
		oper     bool
		wantByte byte
	}{
		{"operationally released: NOGO bit clear", true, 0x00},
		{"not released: NOGO bit set", false, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &v126.GroundStationStatus{OperationalRelease: tt.oper}

			buf := new(bytes.Buffer)
			if _, err := g.Encode(buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got := buf.Bytes(); len(got) != 1 || got[0] != tt.wantByte {
				t.Fatalf("Encode() wrote %v, want [%#02x]", got, tt.wantByte)
			}

			decoded := &v126.GroundStationStatus{}
			if _, err := decoded.Decode(bytes.NewBuffer(buf.Bytes())); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if decoded.OperationalRelease != tt.oper {
				t.Errorf("round trip: OperationalRelease = %v, want %v", decoded.OperationalRelease, tt.oper)
			}
		})
	}
}
