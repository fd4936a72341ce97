// recording/compress.go
package recording

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func newGzipReader(r io.Reader) (*gzip.Reader, error) {
	return gzip.NewReader(r)
}
