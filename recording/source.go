// recording/source.go
package recording

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sys/unix"
)

// IOSS Final Format per-frame header: 32-bit relative timestamp (ms),
// 16-bit line/board identifier, 16-bit payload length (§6). The reference
// document leaves the exact header size implementation-defined but
// constant per file; this is the layout this build standardizes on.
const iossHeaderSize = 8

// RFF per-frame header: 3-byte date (y, m, d), 4-byte device-LSB time of
// day, 2-byte payload length, all big-endian (§6).
const rffHeaderSize = 9

// RFF file header: a 4-byte ASCII magic, a 4-byte format/version ordinal,
// and 8 reserved bytes, all preceding the first frame (§4.2, §6). The
// reference lister consumes and validates this before entering its frame
// loop (proc_inp.cpp calls rff_header() once, ahead of the per-frame
// rff_frame() calls); the definition of rff_header() itself wasn't part
// of the recovered source, so only the magic is checked here.
const rffFileHeaderSize = 16

var rffMagic = [4]byte{'R', 'F', 'F', '1'}

// Source demultiplexes one recording file into a sequence of Frames, per
// §4.2. It generalizes asterix/reader.go's sliding-buffer technique
// (built for the "sequence of records" variant alone) across all four
// wire variants named in §6.
type Source struct {
	format Format
	r      *bufio.Reader
	offset int64
	strict bool

	mmapped []byte // non-nil when the file was mmap'd directly (uncompressed path)
	closer  func() error
}

// Option configures a Source.
type Option func(*Source)

// WithStrict enables strict mode: the first malformed frame aborts the
// run instead of being logged and resynchronized past (§7).
func WithStrict(strict bool) Option {
	return func(s *Source) { s.strict = strict }
}

// Open opens path for demultiplexing as format. Recordings compressed
// with gzip (.gz) or zstd (.zst) are transparently decompressed; other
// files are mapped into memory with mmap so large recordings can be
// scanned without copying them through a read buffer (§5's "bounded
// per-frame state, no orchestration layer").
func Open(path string, format Format, opts ...Option) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	s := &Source{format: format}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := newGzipReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip recording %s: %w", path, err)
		}
		s.r = bufio.NewReaderSize(gz, 1<<20)
		s.closer = func() error { gz.Close(); return f.Close() }

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening zstd recording %s: %w", path, err)
		}
		s.r = bufio.NewReaderSize(zr, 1<<20)
		s.closer = func() error { zr.Close(); return f.Close() }

	default:
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.Size() == 0 {
			f.Close()
			return nil, fmt.Errorf("%w: %s is empty", ErrShortRead, path)
		}
		data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("mmap %s: %w", path, err)
		}
		s.mmapped = data
		s.r = bufio.NewReaderSize(bytes.NewReader(data), 1<<20)
		s.closer = func() error {
			err := unix.Munmap(data)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		}
	}

	if format == RFF {
		if err := s.consumeRFFFileHeader(); err != nil {
			s.Close()
			return nil, fmt.Errorf("reading RFF file header of %s: %w", path, err)
		}
	}

	return s, nil
}

// consumeRFFFileHeader reads and validates the RFF file-level header that
// precedes the first frame. It must run before any readRFFFrame call or
// the header bytes are misread as frame 0's header, desynchronizing the
// whole file.
func (s *Source) consumeRFFFileHeader() error {
	header := make([]byte, rffFileHeaderSize)
	if _, err := io.ReadFull(s.r, header); err != nil {
		return fmt.Errorf("%w: short RFF file header: %v", ErrMalformedFrame, err)
	}
	s.offset += rffFileHeaderSize

	if !bytes.Equal(header[0:4], rffMagic[:]) {
		return fmt.Errorf("%w: RFF file header magic mismatch: got %q", ErrMalformedFrame, header[0:4])
	}
	return nil
}

// Close releases the underlying file and, for mmap'd sources, the
// mapping.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Next returns the next frame, io.EOF when the recording is exhausted,
// or a *FrameError describing one malformed frame. In non-strict mode
// the malformed frame is resynchronized past (by its declared length,
// or one byte at a time if the length itself can't be trusted) before
// the *FrameError is returned, so the caller can log/count it and call
// Next again to pick up where resynchronization left off; in strict
// mode the *FrameError is returned immediately, before any resync.
func (s *Source) Next() (*Frame, error) {
	start := s.offset
	frame, skip, err := s.readOne()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err == nil {
		return frame, nil
	}

	ferr := &FrameError{Offset: start, Err: err}
	if s.strict {
		return nil, ferr
	}
	if skip <= 0 {
		skip = 1
	}
	if _, derr := io.CopyN(io.Discard, s.r, int64(skip)); derr != nil && derr != io.EOF {
		return nil, io.EOF
	}
	s.offset += int64(skip)
	return nil, ferr
}

// readOne reads exactly one frame in the source's format. On failure it
// also returns how many bytes to skip to resynchronize, if known.
func (s *Source) readOne() (*Frame, int, error) {
	switch s.format {
	case Sequence, Netto:
		return s.readDataBlockFrame()
	case IOSSFinal:
		return s.readIOSSFrame()
	case RFF:
		return s.readRFFFrame()
	default:
		return nil, 0, fmt.Errorf("unsupported recording format %s", s.format)
	}
}

// readDataBlockFrame reads one ASTERIX data block: CAT (1), LEN (2,
// big-endian, total including these three), LEN-3 bytes of payload. This
// is the Sequence/Netto variant (§6); the two differ only in whether
// blocks are delimited, which is moot here since LEN alone delimits them.
func (s *Source) readDataBlockFrame() (*Frame, int, error) {
	start := s.offset
	header, err := s.peek(3)
	if err != nil {
		return nil, 0, err
	}

	length := binary.BigEndian.Uint16(header[1:3])
	if length < 3 {
		return nil, 1, fmt.Errorf("%w: data block LEN %d < 3", ErrMalformedFrame, length)
	}

	payload := make([]byte, length)
	n, err := io.ReadFull(s.r, payload)
	if err != nil {
		s.offset += int64(n)
		return nil, int(length) - n, fmt.Errorf("%w: reading %d-byte data block: %v", ErrMalformedFrame, length, err)
	}
	s.offset += int64(n)

	return &Frame{Offset: start, Payload: payload}, 0, nil
}

// readIOSSFrame reads one IOSS Final Format frame: header then payload.
func (s *Source) readIOSSFrame() (*Frame, int, error) {
	start := s.offset
	header := make([]byte, iossHeaderSize)
	if _, err := io.ReadFull(s.r, header); err != nil {
		return nil, 0, err
	}
	s.offset += iossHeaderSize

	relMillis := binary.BigEndian.Uint32(header[0:4])
	line := binary.BigEndian.Uint16(header[4:6])
	length := binary.BigEndian.Uint16(header[6:8])

	payload := make([]byte, length)
	n, err := io.ReadFull(s.r, payload)
	s.offset += int64(n)
	if err != nil {
		return nil, int(length) - n, fmt.Errorf("%w: IOSS frame at %d: %v", ErrMalformedFrame, start, err)
	}

	return &Frame{
		Offset:    start,
		Line:      uint32(line),
		Timestamp: time.UnixMilli(int64(relMillis)),
		Payload:   payload,
	}, 0, nil
}

// readRFFFrame reads one RFF (Comsoft) frame: date, device-LSB time of
// day, length, then payload.
func (s *Source) readRFFFrame() (*Frame, int, error) {
	start := s.offset
	header := make([]byte, rffHeaderSize)
	if _, err := io.ReadFull(s.r, header); err != nil {
		return nil, 0, err
	}
	s.offset += rffHeaderSize

	year, month, day := header[0], header[1], header[2]
	todUnits := binary.BigEndian.Uint32(header[3:7])
	length := binary.BigEndian.Uint16(header[7:9])

	payload := make([]byte, length)
	n, err := io.ReadFull(s.r, payload)
	s.offset += int64(n)
	if err != nil {
		return nil, int(length) - n, fmt.Errorf("%w: RFF frame at %d: %v", ErrMalformedFrame, start, err)
	}

	// Device LSB is implementation-defined; this build treats it as
	// milliseconds since midnight, matching the IOSS convention.
	date := time.Date(2000+int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	timestamp := date.Add(time.Duration(todUnits) * time.Millisecond)

	return &Frame{
		Offset:    start,
		Timestamp: timestamp,
		Payload:   payload,
	}, 0, nil
}

// peek returns the next n bytes without consuming them. A clean end of
// input (nothing left at all) reports io.EOF, matching io.ReadFull's
// convention; running out partway through reports io.ErrUnexpectedEOF so
// a dangling, truncated header is treated as a malformed frame rather
// than a silent end of recording (matching readIOSSFrame/readRFFFrame,
// which get this distinction for free from io.ReadFull on the header).
func (s *Source) peek(n int) ([]byte, error) {
	b, err := s.r.Peek(n)
	if err != nil {
		if err == io.EOF || err == bufio.ErrBufferFull {
			if len(b) == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return b, nil
}
