// dataitems/cat021/target_address.go
package v26

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TargetAddress implements I021/080
// Contains the ICAO 24-bit aircraft address
type TargetAddress struct {
	Address uint32 // 24-bit ICAO address
}

func (t *TargetAddress) Encode(buf *bytes.Buffer) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	wire.PutUint24BE(buf, t.Address)
	return 3, nil
}

func (t *TargetAddress) Decode(buf *bytes.Buffer) (int, error) {
	b, err := wire.Take(buf, 3, "target address")
	if err != nil {
		return 0, err
	}

	t.Address = wire.Uint24BE(b)
	return 3, t.Validate()
}

func (t *TargetAddress) Validate() error {
	// Check that address fits in 24 bits
	if t.Address > 0xFFFFFF {
		return fmt.Errorf("invalid target address: exceeds 24 bits")
	}
	return nil
}

// String returns the ICAO address in hex format
func (t *TargetAddress) String() string {
	return fmt.Sprintf("%06X", t.Address)
}

// FromString sets the address from a hex string
func (t *TargetAddress) FromString(s string) error {
	var addr uint32
	_, err := fmt.Sscanf(s, "%x", &addr)
	if err != nil {
		return fmt.Errorf("parsing target address: %w", err)
	}
	t.Address = addr
	return t.Validate()
}
