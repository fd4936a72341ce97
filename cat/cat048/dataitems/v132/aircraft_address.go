// dataitems/cat048/aircraft_address.go
package v132

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// AircraftAddress implements I048/220
// Aircraft address (24-bits Mode S address) assigned uniquely to each aircraft.
type AircraftAddress struct {
	Address uint32 // 24-bit Mode S address
}

// Decode implements the DataItem interface
func (a *AircraftAddress) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 3, "aircraft address")
	if err != nil {
		return 0, err
	}

	a.Address = wire.Uint24BE(data)

	return 3, a.Validate()
}

// Encode implements the DataItem interface
func (a *AircraftAddress) Encode(buf *bytes.Buffer) (int, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	wire.PutUint24BE(buf, a.Address)
	return 3, nil
}

// Validate implements the DataItem interface
func (a *AircraftAddress) Validate() error {
	if a.Address > 0xFFFFFF { // 2^24 - 1
		return fmt.Errorf("aircraft address exceeds 24 bits: %X", a.Address)
	}
	return nil
}

// String returns a human-readable representation
func (a *AircraftAddress) String() string {
	return fmt.Sprintf("%06X", a.Address)
}

// FromString sets the aircraft address from a hexadecimal string
func (a *AircraftAddress) FromString(s string) error {
	_, err := fmt.Sscanf(s, "%x", &a.Address)
	if err != nil {
		return fmt.Errorf("invalid aircraft address format: %w", err)
	}
	return a.Validate()
}
