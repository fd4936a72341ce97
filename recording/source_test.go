// recording/source_test.go
package recording_test

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/surveillance-tools/panoramix/recording"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestSourceSequenceTwoBlocks(t *testing.T) {
	var data []byte
	block1 := []byte{0x01, 0x00, 0x05, 0xAA, 0xBB}
	block2 := []byte{0x02, 0x00, 0x04, 0xCC}
	data = append(data, block1...)
	data = append(data, block2...)

	path := writeTempFile(t, "seq.bin", data)
	src, err := recording.Open(path, recording.Sequence)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	f1, err := src.Next()
	if err != nil {
		t.Fatalf("Next() 1st frame error = %v", err)
	}
	if len(f1.Payload) != 2 {
		t.Errorf("1st frame payload len = %d, want 2", len(f1.Payload))
	}

	f2, err := src.Next()
	if err != nil {
		t.Fatalf("Next() 2nd frame error = %v", err)
	}
	if len(f2.Payload) != 1 {
		t.Errorf("2nd frame payload len = %d, want 1", len(f2.Payload))
	}

	if _, err := src.Next(); err == nil {
		t.Error("Next() at end of file should return io.EOF")
	}
}

func TestSourceSequenceTruncatedLastFrameReportsCorrectOffset(t *testing.T) {
	var data []byte
	block1 := []byte{0x01, 0x00, 0x05, 0xAA, 0xBB}
	data = append(data, block1...)
	// A second block header that declares more payload than actually
	// follows (the file ends mid-frame, as if the writer crashed).
	truncatedStart := int64(len(data))
	data = append(data, 0x02, 0x00, 0x0A, 0xCC, 0xDD)

	path := writeTempFile(t, "truncated.bin", data)

	strictSrc, err := recording.Open(path, recording.Sequence, recording.WithStrict(true))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer strictSrc.Close()

	if _, err := strictSrc.Next(); err != nil {
		t.Fatalf("Next() 1st frame error = %v", err)
	}

	_, err = strictSrc.Next()
	var ferr *recording.FrameError
	if !errors.As(err, &ferr) {
		t.Fatalf("Next() 2nd frame error = %v, want *FrameError", err)
	}
	if ferr.Offset != truncatedStart {
		t.Errorf("FrameError.Offset = %d, want %d (the truncated frame's start, not mid-frame)", ferr.Offset, truncatedStart)
	}
}

func TestSourceSequenceTruncatedLastFrameResyncsToEOF(t *testing.T) {
	var data []byte
	block1 := []byte{0x01, 0x00, 0x05, 0xAA, 0xBB}
	data = append(data, block1...)
	data = append(data, 0x02, 0x00, 0x0A, 0xCC, 0xDD)

	path := writeTempFile(t, "truncated_nonstrict.bin", data)
	src, err := recording.Open(path, recording.Sequence)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	if _, err := src.Next(); err != nil {
		t.Fatalf("Next() 1st frame error = %v", err)
	}

	// Non-strict mode resynchronizes past the malformed trailing frame
	// straight to end of input, but still reports it as a *FrameError so
	// the caller can log/count it rather than silently swallowing it.
	_, err = src.Next()
	var ferr *recording.FrameError
	if !errors.As(err, &ferr) {
		t.Fatalf("Next() on truncated trailing frame = %v, want *FrameError", err)
	}

	// The frame after the resync is genuine end of input.
	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Next() after resync = %v, want io.EOF", err)
	}
}

func TestSourceSequenceDanglingHeaderIsMalformedNotEOF(t *testing.T) {
	var data []byte
	block1 := []byte{0x01, 0x00, 0x05, 0xAA, 0xBB}
	data = append(data, block1...)
	// Two stray bytes after the last full block: not enough to form
	// another 3-byte data block header, and must not be mistaken for a
	// clean end of recording.
	data = append(data, 0x02, 0x00)

	path := writeTempFile(t, "dangling_header.bin", data)
	src, err := recording.Open(path, recording.Sequence, recording.WithStrict(true))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	if _, err := src.Next(); err != nil {
		t.Fatalf("Next() 1st frame error = %v", err)
	}

	_, err = src.Next()
	var ferr *recording.FrameError
	if !errors.As(err, &ferr) {
		t.Fatalf("Next() on dangling trailing header = %v, want *FrameError (not a clean io.EOF)", err)
	}
}

func rffFileHeader() []byte {
	h := make([]byte, 16)
	copy(h, []byte("RFF1"))
	return h
}

func rffFrame(year, month, day byte, todMillis uint32, payload []byte) []byte {
	h := make([]byte, 9)
	h[0], h[1], h[2] = year, month, day
	binary.BigEndian.PutUint32(h[3:7], todMillis)
	binary.BigEndian.PutUint16(h[7:9], uint16(len(payload)))
	return append(h, payload...)
}

func TestSourceRFFConsumesFileHeaderBeforeFirstFrame(t *testing.T) {
	var data []byte
	data = append(data, rffFileHeader()...)
	data = append(data, rffFrame(25, 3, 14, 1234, []byte{0x15, 0x00, 0x04, 0x01})...)

	path := writeTempFile(t, "rec.rff", data)
	src, err := recording.Open(path, recording.RFF)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	frame, err := src.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(frame.Payload) != 4 {
		t.Fatalf("payload len = %d, want 4 (file header must not be read as part of frame 0)", len(frame.Payload))
	}
	if frame.Timestamp.Year() != 2025 || frame.Timestamp.Month().String() != "March" || frame.Timestamp.Day() != 14 {
		t.Errorf("Timestamp = %v, want 2025-03-14", frame.Timestamp)
	}
}

func TestSourceRFFRejectsBadFileHeaderMagic(t *testing.T) {
	data := make([]byte, 16)
	copy(data, []byte("XXXX"))
	data = append(data, rffFrame(25, 1, 1, 0, nil)...)

	path := writeTempFile(t, "bad.rff", data)
	if _, err := recording.Open(path, recording.RFF); err == nil {
		t.Error("Open() should reject a file whose RFF header magic doesn't match")
	}
}
