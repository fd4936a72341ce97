// asterix/dataitem_test.go
package asterix

import (
	"bytes"
	"testing"
)

func TestItemTypeString(t *testing.T) {
	testCases := []struct {
		itemType ItemType
		expected string
	}{
		{Fixed, "Fixed"},
		{Variable, "Variable"},
		{Repetitive, "Repetitive"},
		{Immediate, "Immediate"},
		{ItemType(99), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			if result := tc.itemType.String(); result != tc.expected {
				t.Errorf("String() = %q, want %q", result, tc.expected)
			}
		})
	}
}

// fixedByteItem is a minimal DataItem used across this package's tests: one
// fixed octet, round-tripping its value unchanged.
type fixedByteItem struct {
	value byte
	valid bool
}

func (f *fixedByteItem) Encode(buf *bytes.Buffer) (int, error) {
	return 1, buf.WriteByte(f.value)
}

func (f *fixedByteItem) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	f.value = b
	return 1, nil
}

func (f *fixedByteItem) Validate() error {
	if !f.valid {
		return ErrInvalidField
	}
	return nil
}

func TestFixedByteItemRoundTrip(t *testing.T) {
	item := &fixedByteItem{value: 0x42, valid: true}

	var buf bytes.Buffer
	n, err := item.Encode(&buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if n != 1 {
		t.Fatalf("Encode wrote %d bytes, want 1", n)
	}

	decoded := &fixedByteItem{}
	if _, err := decoded.Decode(&buf); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.value != 0x42 {
		t.Errorf("Decode() = %#x, want 0x42", decoded.value)
	}
}

func TestDataFieldZeroValue(t *testing.T) {
	var f DataField
	if f.FRN != 0 || f.Mandatory {
		t.Error("zero-value DataField should have FRN 0 and Mandatory false")
	}
}
