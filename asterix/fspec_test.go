// asterix/fspec_test.go
package asterix

import (
	"bytes"
	"errors"
	"testing"
)

func TestFSPECSetGetFRN(t *testing.T) {
	f := NewFSPEC()

	if err := f.SetFRN(0); err == nil {
		t.Error("SetFRN(0) should fail")
	}

	for _, frn := range []uint8{1, 3, 8, 14} {
		if err := f.SetFRN(frn); err != nil {
			t.Fatalf("SetFRN(%d): %v", frn, err)
		}
	}

	for _, frn := range []uint8{1, 3, 8, 14} {
		if !f.GetFRN(frn) {
			t.Errorf("GetFRN(%d) = false, want true", frn)
		}
	}
	for _, frn := range []uint8{2, 4, 7, 9, 15} {
		if f.GetFRN(frn) {
			t.Errorf("GetFRN(%d) = true, want false", frn)
		}
	}
}

func TestFSPECFXChaining(t *testing.T) {
	f := NewFSPEC()
	if err := f.SetFRN(14); err != nil {
		t.Fatalf("SetFRN(14): %v", err)
	}

	if f.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", f.Size())
	}

	var buf bytes.Buffer
	if _, err := f.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	encoded := buf.Bytes()

	if encoded[0]&0x01 != 1 {
		t.Error("first octet FX bit should be set")
	}
	if encoded[1]&0x01 != 0 {
		t.Error("last octet FX bit should be clear")
	}
}

func TestFSPECEncodeEmpty(t *testing.T) {
	f := NewFSPEC()
	var buf bytes.Buffer
	if _, err := f.Encode(&buf); !errors.Is(err, ErrInvalidFSPEC) {
		t.Fatalf("Encode of empty FSPEC: got %v, want ErrInvalidFSPEC", err)
	}
}

func TestFSPECDecodeRoundTrip(t *testing.T) {
	f1 := NewFSPEC()
	for _, frn := range []uint8{1, 2, 9} {
		if err := f1.SetFRN(frn); err != nil {
			t.Fatalf("SetFRN(%d): %v", frn, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f1.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	f2 := NewFSPEC()
	n, err := f2.Decode(&buf, 8)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != f1.Size() {
		t.Fatalf("Decode read %d bytes, want %d", n, f1.Size())
	}

	for _, frn := range []uint8{1, 2, 9} {
		if !f2.GetFRN(frn) {
			t.Errorf("round-tripped FSPEC missing FRN %d", frn)
		}
	}
}

func TestFSPECDecodeTruncated(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x81}) // FX set, no following octet
	f := NewFSPEC()
	if _, err := f.Decode(buf, 8); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Decode truncated chain: got %v, want ErrTruncated", err)
	}
}

func TestFSPECDecodeTooLong(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xFF, 0xFF, 0xFF})
	f := NewFSPEC()
	if _, err := f.Decode(buf, 2); !errors.Is(err, ErrFspecTooLong) {
		t.Fatalf("Decode over-long chain: got %v, want ErrFspecTooLong", err)
	}
}

func TestFSPECMaxFRN(t *testing.T) {
	f := NewFSPEC()
	if err := f.SetFRN(10); err != nil {
		t.Fatalf("SetFRN(10): %v", err)
	}
	if got := f.MaxFRN(); got != 14 {
		t.Fatalf("MaxFRN() = %d, want 14", got)
	}
}

func TestFSPECWalk(t *testing.T) {
	f := NewFSPEC()
	for _, frn := range []uint8{1, 3} {
		if err := f.SetFRN(frn); err != nil {
			t.Fatalf("SetFRN(%d): %v", frn, err)
		}
	}

	var seen []uint8
	err := f.Walk(func(frn uint8, set bool) error {
		if set {
			seen = append(seen, frn)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("Walk visited %v, want [1 3]", seen)
	}
}
