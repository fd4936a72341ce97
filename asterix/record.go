// asterix/record.go
package asterix

import (
	"bytes"
	"fmt"
	"io"
)

// Record represents a single ASTERIX record: an FSPEC bitmap followed by
// the data items it marks present, decoded in ascending FRN order.
type Record struct {
	category Category
	fspec    *FSPEC
	items    map[string]DataItem
	uap      UAP
	ctx      *DecodingContext
}

// SetContext attaches the ambient per-frame decoding context; items
// implementing ContextAware receive it before Decode is called.
func (r *Record) SetContext(ctx *DecodingContext) {
	r.ctx = ctx
}

// NewRecord creates a new record for a specific category.
func NewRecord(cat Category, uap UAP) (*Record, error) {
	if !cat.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, cat)
	}
	if uap == nil {
		return nil, fmt.Errorf("%w: UAP cannot be nil", ErrInvalidMessage)
	}
	if uap.Category() != cat {
		return nil, fmt.Errorf("%w: UAP category %d does not match record category %d",
			ErrInvalidMessage, uap.Category(), cat)
	}

	return &Record{
		category: cat,
		fspec:    NewFSPEC(),
		items:    make(map[string]DataItem),
		uap:      uap,
	}, nil
}

// SetDataItem adds or updates a data item.
func (r *Record) SetDataItem(id string, item DataItem) error {
	if item == nil {
		return fmt.Errorf("%w: data item cannot be nil", ErrInvalidMessage)
	}

	var frn uint8
	for _, field := range r.uap.Fields() {
		if field.DataItem == id {
			frn = field.FRN
			break
		}
	}

	if frn == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownDataItem, id)
	}

	if err := item.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", id, err)
	}

	r.items[id] = item
	return r.fspec.SetFRN(frn)
}

// GetDataItem retrieves a data item by its ID.
func (r *Record) GetDataItem(id string) (DataItem, string, bool) {
	item, exists := r.items[id]
	return item, fmt.Sprintf("%T", item), exists
}

// Items returns the decoded items, keyed by data-item ID.
func (r *Record) Items() map[string]DataItem {
	return r.items
}

// Category returns the ASTERIX category this record belongs to.
func (r *Record) Category() Category {
	return r.category
}

// FSPEC returns the record's field specification bitmap.
func (r *Record) FSPEC() *FSPEC {
	return r.fspec
}

// EstimateSize returns the encoded size of the record in bytes by
// encoding it into a scratch buffer; used for diagnostics and CLI
// reporting, not on any decode hot path.
func (r *Record) EstimateSize() int {
	if len(r.items) == 0 {
		return 0
	}
	var scratch bytes.Buffer
	n, err := r.Encode(&scratch)
	if err != nil {
		return 0
	}
	return n
}

// Encode writes the record to a buffer.
func (r *Record) Encode(buf *bytes.Buffer) (int, error) {
	if err := r.uap.Validate(r.items); err != nil {
		return 0, err
	}

	bytesWritten := 0

	n, err := r.fspec.Encode(buf)
	if err != nil {
		return bytesWritten, fmt.Errorf("encoding FSPEC: %w", err)
	}
	bytesWritten += n

	for _, field := range r.uap.Fields() {
		if !r.fspec.GetFRN(field.FRN) {
			continue
		}

		item, exists := r.items[field.DataItem]
		if !exists {
			return bytesWritten, fmt.Errorf("%w: %s marked in FSPEC but not present",
				ErrInvalidMessage, field.DataItem)
		}

		n, err := item.Encode(buf)
		if err != nil {
			return bytesWritten, fmt.Errorf("encoding %s: %w", field.DataItem, err)
		}
		bytesWritten += n
	}

	return bytesWritten, nil
}

// Decode reads one record from buf: the FSPEC chain, then every data item
// the chain marks present, in ascending FRN order. See §4.4 for the
// length-class wrapper policy applied to each item.
func (r *Record) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() == 0 {
		return 0, io.EOF
	}

	bytesRead := 0

	n, err := r.fspec.Decode(buf, int(r.uap.FSPECMax()))
	bytesRead += n
	if err != nil {
		return bytesRead, err
	}

	r.items = make(map[string]DataItem)
	anySet := false

	walkErr := r.fspec.Walk(func(frn uint8, set bool) error {
		if !set {
			return nil
		}
		anySet = true

		field, ok := r.uap.FieldByFRN(frn)
		if !ok {
			return &RecordError{Category: uint8(r.category), FRN: frn, Offset: bytesRead, Err: ErrUndefinedItem}
		}

		item, err := r.uap.CreateDataItem(field.DataItem)
		if err != nil {
			return &RecordError{Category: uint8(r.category), FRN: frn, Offset: bytesRead, Err: err}
		}

		if aware, ok := item.(ContextAware); ok && r.ctx != nil {
			aware.SetContext(r.ctx)
		}

		n, err := decodeItem(field, item, buf)
		bytesRead += n
		if err != nil {
			return &RecordError{Category: uint8(r.category), FRN: frn, Offset: bytesRead, Err: err}
		}

		r.items[field.DataItem] = item
		return nil
	})
	if walkErr != nil {
		return bytesRead, walkErr
	}

	if !anySet {
		return bytesRead, &RecordError{Category: uint8(r.category), Offset: bytesRead, Err: ErrEmptyRecord}
	}

	return bytesRead, r.uap.Validate(r.items)
}

// decodeItem applies the §4.4 length-class framing policy for field's
// ItemType before delegating to item's own Decode.
func decodeItem(field DataField, item DataItem, buf *bytes.Buffer) (int, error) {
	switch field.Type {
	case Fixed:
		if buf.Len() < int(field.Length) {
			return 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, field.DataItem, field.Length, buf.Len())
		}
		return item.Decode(buf)

	case Variable:
		return item.Decode(buf)

	case Repetitive:
		if buf.Len() < 1 {
			return 0, fmt.Errorf("%w: %s missing REP octet", ErrTruncated, field.DataItem)
		}
		rep := buf.Bytes()[0]
		if rep == 0 {
			return 0, fmt.Errorf("%w: %s REP = 0", ErrInvalidRepetition, field.DataItem)
		}
		need := 1 + int(rep)*int(field.Length)
		if buf.Len() < need {
			return 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, field.DataItem, need, buf.Len())
		}
		return item.Decode(buf)

	case Immediate:
		return item.Decode(buf)

	default:
		return 0, fmt.Errorf("%w: %s has unknown item type %s", ErrInvalidDataType, field.DataItem, field.Type)
	}
}
