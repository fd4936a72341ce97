package bits

import "testing"

func TestUint16(t *testing.T) {
	if got := Uint16([]byte{0x12, 0x34}); got != 0x1234 {
		t.Fatalf("Uint16 = %#x, want 0x1234", got)
	}
}

func TestInt16Negative(t *testing.T) {
	if got := Int16([]byte{0xFF, 0xFE}); got != -2 {
		t.Fatalf("Int16 = %d, want -2", got)
	}
}

func TestUint24(t *testing.T) {
	if got := Uint24([]byte{0x01, 0x02, 0x03}); got != 0x010203 {
		t.Fatalf("Uint24 = %#x, want 0x010203", got)
	}
}

func TestInt24Negative(t *testing.T) {
	if got := Int24([]byte{0xFF, 0xFF, 0xFF}); got != -1 {
		t.Fatalf("Int24 = %d, want -1", got)
	}
}

func TestSignExtend16(t *testing.T) {
	// 14-bit field, bit 13 set -> negative
	v := uint16(0x2000) // bit 13 set, width 14
	if got := SignExtend16(v, 14); got != -8192 {
		t.Fatalf("SignExtend16 = %d, want -8192", got)
	}
	if got := SignExtend16(0x1000, 14); got != 4096 {
		t.Fatalf("SignExtend16 positive = %d, want 4096", got)
	}
}

func TestICAOChar(t *testing.T) {
	cases := map[byte]byte{
		1:  'A',
		26: 'Z',
		32: ' ',
		48: '0',
		57: '9',
		63: '?',
		0:  '?',
	}
	for in, want := range cases {
		if got := ICAOChar(in); got != want {
			t.Fatalf("ICAOChar(%d) = %q, want %q", in, got, want)
		}
	}
}
