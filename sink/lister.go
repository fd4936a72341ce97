// sink/lister.go
package sink

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/width"

	"github.com/surveillance-tools/panoramix/asterix"
)

// Lister writes the textual, one-record-per-block listing that
// original_source/src/lister.cpp produces: one line per field, FRN
// order, "FRN  item  description: value". golang.org/x/text handles
// column widths for the item-name column so wide-rune descriptions
// (rare, but the reference fields aren't restricted to ASCII) still
// line up.
type Lister struct {
	w            io.Writer
	nameColWidth int
}

// NewLister creates a Lister writing to w. nameColWidth is the minimum
// width reserved for the "I048/010"-style item name column; 0 uses a
// sensible default.
func NewLister(w io.Writer, nameColWidth int) *Lister {
	if nameColWidth <= 0 {
		nameColWidth = 10
	}
	return &Lister{w: w, nameColWidth: nameColWidth}
}

// List writes one listing block for msg, mirroring lister.cpp's
// "FRN, item, description: value" layout, fields in FRN order.
func (l *Lister) List(msg *asterix.AsterixMessage) error {
	fmt.Fprintf(l.w, "; ASTERIX Category %s, %d record(s)\n", msg.Category.String(), msg.GetRecordCount())

	fields := msg.UAPFields()
	ordered := append([]asterix.DataField(nil), fields...)
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].FRN < ordered[b].FRN })

	for i, record := range msg.Records() {
		fmt.Fprintf(l.w, "; Record #%d:\n", i+1)

		for _, field := range ordered {
			item, ok := record[field.DataItem]
			if !ok {
				continue
			}
			name := padDisplay(field.DataItem, l.nameColWidth)
			if _, err := fmt.Fprintf(l.w, ";  %s %s: %v\n", name, field.Description, item); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
		}
	}

	return nil
}

// padDisplay right-pads s to at least n display columns, widening
// East-Asian wide runes' contribution by 2 rather than 1 so multi-byte
// descriptions (carried through from future localized UAP tables) still
// line up under golang.org/x/text's width classification.
func padDisplay(s string, n int) string {
	cols := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cols += 2
		default:
			cols++
		}
	}
	for cols < n {
		s += " "
		cols++
	}
	return s
}
