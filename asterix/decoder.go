// asterix/decoder.go
package asterix

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Decoder is the per-category registry the data-block dispatcher (§4.3)
// consults: given a category byte, it holds the UAP selected for that
// category at configuration time (the active edition chosen once, up
// front, per §4.5's "edition-dependent bit layouts").
type Decoder struct {
	uaps map[Category]UAP
}

// NewDecoder creates a decoder with the provided UAPs, one per category.
func NewDecoder(uaps ...UAP) (*Decoder, error) {
	d := &Decoder{
		uaps: make(map[Category]UAP, len(uaps)),
	}

	for _, uap := range uaps {
		if uap == nil {
			return nil, fmt.Errorf("%w: UAP cannot be nil", ErrInvalidMessage)
		}
		d.uaps[uap.Category()] = uap
	}

	return d, nil
}

// RegisterUAP adds or replaces the UAP used for its category.
func (d *Decoder) RegisterUAP(uap UAP) error {
	if uap == nil {
		return fmt.Errorf("%w: UAP cannot be nil", ErrInvalidMessage)
	}
	d.uaps[uap.Category()] = uap
	return nil
}

// Supports reports whether a decoder is registered for the category.
func (d *Decoder) Supports(cat Category) bool {
	_, ok := d.uaps[cat]
	return ok
}

// Categories lists every category with a registered UAP.
func (d *Decoder) Categories() []Category {
	cats := make([]Category, 0, len(d.uaps))
	for c := range d.uaps {
		cats = append(cats, c)
	}
	return cats
}

// Decode dispatches one ASTERIX data block with no ambient decoding
// context. See DecodeWithContext.
func (d *Decoder) Decode(data []byte) (*AsterixMessage, error) {
	return d.DecodeWithContext(data, nil)
}

// DecodeWithContext dispatches one ASTERIX data block: CAT (1 byte), LEN
// (2 bytes, big-endian, total including these 3), then LEN-3 bytes of
// records, per §4.3 and §6. ctx is forwarded to every decoded record.
func (d *Decoder) DecodeWithContext(data []byte, ctx *DecodingContext) (*AsterixMessage, error) {
	if len(data) < 3 {
		return nil, fmt.Errorf("%w: data too short", ErrBadBlockLength)
	}

	cat := Category(data[0])
	uap, exists := d.uaps[cat]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, cat)
	}

	length := binary.BigEndian.Uint16(data[1:3])
	if length < 3 || int(length) > len(data) {
		return nil, fmt.Errorf("%w: LEN %d, block has %d bytes", ErrBadBlockLength, length, len(data))
	}

	block, err := NewDataBlock(cat, uap)
	if err != nil {
		return nil, fmt.Errorf("creating data block for category %d: %w", cat, err)
	}

	if err := block.DecodeWithContext(data[:length], ctx); err != nil {
		return nil, &BlockError{Category: uint8(cat), Err: err}
	}

	msg := &AsterixMessage{
		Category:   cat,
		RawMessage: data[:length],
		Timestamp:  time.Now(),
		uap:        uap,
	}
	for _, record := range block.Records() {
		msg.AddRecord(record.Items())
	}
	msg.RawMessage = data[:length]

	return msg, nil
}
