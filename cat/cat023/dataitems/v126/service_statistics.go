// cat/cat023/dataitems/v126/service_statistics.go
package v126

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// StatisticsEntry is one repetition of I023/120: a message counter for one
// report type, since a reference point (start of day, start of track,...).
type StatisticsEntry struct {
	Type      uint8
	Reference uint8
	Count     uint32 // 4-byte counter, top 2 bits of the 6-octet entry reserved
}

// ServiceStatistics represents I023/120 - Service Statistics
// Repetitive, 6 bytes per repetition: type, reference, then a 4-byte count.
type ServiceStatistics struct {
	Entries []StatisticsEntry
}

// NewServiceStatistics creates an empty statistics report.
func NewServiceStatistics() *ServiceStatistics {
	return &ServiceStatistics{}
}

// Decode reads the REP octet followed by REP 6-byte entries.
func (s *ServiceStatistics) Decode(buf *bytes.Buffer) (int, error) {
	rep, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: reading I023/120 REP: %v", asterix.ErrBufferTooShort, err)
	}
	if rep == 0 {
		return 1, fmt.Errorf("%w: I023/120 REP = 0", asterix.ErrInvalidRepetition)
	}

	need := int(rep) * 6
	if buf.Len() < need {
		return 1, fmt.Errorf("%w: I023/120 needs %d bytes, have %d", asterix.ErrBufferTooShort, need, buf.Len())
	}

	data := buf.Next(need)
	s.Entries = make([]StatisticsEntry, rep)
	for i := 0; i < int(rep); i++ {
		entry := data[i*6 : i*6+6]
		s.Entries[i] = StatisticsEntry{
			Type:      entry[0],
			Reference: entry[1],
			Count:     binary.BigEndian.Uint32(entry[2:6]),
		}
	}

	return 1 + need, nil
}

// Encode writes the REP octet followed by each entry.
func (s *ServiceStatistics) Encode(buf *bytes.Buffer) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if err := buf.WriteByte(uint8(len(s.Entries))); err != nil {
		return 0, fmt.Errorf("writing I023/120 REP: %w", err)
	}
	n := 1
	for _, e := range s.Entries {
		entry := make([]byte, 6)
		entry[0] = e.Type
		entry[1] = e.Reference
		binary.BigEndian.PutUint32(entry[2:6], e.Count)
		m, err := buf.Write(entry)
		if err != nil {
			return n + m, fmt.Errorf("writing I023/120 entry: %w", err)
		}
		n += m
	}

	return n, nil
}

// Validate checks the repetition count fits in one octet.
func (s *ServiceStatistics) Validate() error {
	if len(s.Entries) == 0 || len(s.Entries) > 255 {
		return fmt.Errorf("%w: I023/120 repetition count %d out of range", asterix.ErrInvalidRepetition, len(s.Entries))
	}
	return nil
}

// String returns a string representation.
func (s *ServiceStatistics) String() string {
	return fmt.Sprintf("%d statistics entries", len(s.Entries))
}
