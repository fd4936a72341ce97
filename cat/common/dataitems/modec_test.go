// dataitems/common/modec_test.go
package common_test

import (
	"testing"

	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

func TestModeCToAltitude(t *testing.T) {
	tests := []struct {
		name    string
		mc      uint16
		wantAlt int16
		wantOk  bool
	}{
		{"valid low code", 0x0008, -8, true},
		{"valid mid code", 0x000a, 1263, true},
		{"valid another code", 0x000c, 623, true},
		{"top nibble set", 0xf008, 0, false},
		{"D1 bit set", 0x0009, 0, false},
		{"not an allowable code", 0x0000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alt, ok := common.ModeCToAltitude(tt.mc)
			if ok != tt.wantOk {
				t.Fatalf("ModeCToAltitude(%#04x) ok = %v, want %v", tt.mc, ok, tt.wantOk)
			}
			if ok && alt != tt.wantAlt {
				t.Errorf("ModeCToAltitude(%#04x) = %d, want %d", tt.mc, alt, tt.wantAlt)
			}
		})
	}
}
