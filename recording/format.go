// recording/format.go
package recording

import "fmt"

// Format identifies one of the recording-format variants named in §6:
// how individual frames are delimited inside a recording file. This is
// independent of the ASTERIX data-block format carried inside each frame.
type Format int

const (
	// Sequence is a raw concatenation of ASTERIX data blocks; a "frame"
	// is exactly one data block (-asf CLI flag).
	Sequence Format = iota + 1
	// Netto is the same data-block format, but length envelopes may be
	// concatenated with no inter-block delimiter at all (-net).
	Netto
	// IOSSFinal is IOSS Final Format: a fixed-size per-frame header
	// (relative timestamp, line/board id, length) followed by payload
	// (-ioss).
	IOSSFinal
	// RFF is the Comsoft Recording File Format: a file-level header
	// followed by frames each carrying a y/m/d date, device-LSB time of
	// day, a length, and payload (-rff).
	RFF
)

// String names a format the way the CLI flags do.
func (f Format) String() string {
	switch f {
	case Sequence:
		return "sequence"
	case Netto:
		return "netto"
	case IOSSFinal:
		return "ioss"
	case RFF:
		return "rff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a CLI flag spelling (-ioss, -asf, -net, -rec, -rff) to
// a Format. "-rec" and "-asf" both select Sequence: the reference tooling
// uses -rec for "recording" and -asf for "ASTERIX file", both meaning
// a bare concatenation of data blocks.
func ParseFormat(flag string) (Format, error) {
	switch flag {
	case "ioss":
		return IOSSFinal, nil
	case "asf", "rec":
		return Sequence, nil
	case "net":
		return Netto, nil
	case "rff":
		return RFF, nil
	default:
		return 0, fmt.Errorf("unknown recording format: %s", flag)
	}
}
