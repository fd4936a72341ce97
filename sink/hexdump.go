// sink/hexdump.go
package sink

import (
	"fmt"
	"io"
)

// bytesPerLine mirrors list_frame/list_buffer's wrapping width.
const bytesPerLine = 16

// Hexdump writes data as an offset-prefixed hex dump, 16 octets per
// line, grounded on original_source/src/lister.cpp's list_frame: useful
// for inspecting a recording-format frame that failed to decode.
func Hexdump(w io.Writer, baseOffset int64, data []byte) error {
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		if _, err := fmt.Fprintf(w, "%08x:", baseOffset+int64(i)); err != nil {
			return err
		}
		for j := i; j < end; j++ {
			if _, err := fmt.Fprintf(w, " %02x", data[j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
