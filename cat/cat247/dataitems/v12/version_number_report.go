// cat/cat247/dataitems/v12/version_number_report.go
package v12

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// CategoryVersion is one repetition of I247/550: the edition a peer
// system reports for a single category it exchanges.
type CategoryVersion struct {
	Category uint8
	Major    uint8
	Minor    uint8
}

// String returns e.g. "CAT048: v1.32".
func (c CategoryVersion) String() string {
	return fmt.Sprintf("CAT%03d: v%d.%d", c.Category, c.Major, c.Minor)
}

// VersionNumberReport represents I247/550 - Category Version Number Report
// Repetitive, 3 bytes per repetition: category, version major, version minor.
type VersionNumberReport struct {
	Versions []CategoryVersion
}

// NewVersionNumberReport creates an empty report.
func NewVersionNumberReport() *VersionNumberReport {
	return &VersionNumberReport{}
}

// Decode reads the REP octet followed by REP 3-byte entries.
func (v *VersionNumberReport) Decode(buf *bytes.Buffer) (int, error) {
	rep, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: reading I247/550 REP: %v", asterix.ErrBufferTooShort, err)
	}
	if rep == 0 {
		return 1, fmt.Errorf("%w: I247/550 REP = 0", asterix.ErrInvalidRepetition)
	}

	need := int(rep) * 3
	if buf.Len() < need {
		return 1, fmt.Errorf("%w: I247/550 needs %d bytes, have %d", asterix.ErrBufferTooShort, need, buf.Len())
	}

	v.Versions = make([]CategoryVersion, rep)
	data := buf.Next(need)
	for i := 0; i < int(rep); i++ {
		v.Versions[i] = CategoryVersion{
			Category: data[i*3],
			Major:    data[i*3+1],
			Minor:    data[i*3+2],
		}
	}

	return 1 + need, nil
}

// Encode writes the REP octet followed by each entry.
func (v *VersionNumberReport) Encode(buf *bytes.Buffer) (int, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}

	if err := buf.WriteByte(uint8(len(v.Versions))); err != nil {
		return 0, fmt.Errorf("writing I247/550 REP: %w", err)
	}
	n := 1
	for _, cv := range v.Versions {
		if err := buf.WriteByte(cv.Category); err != nil {
			return n, fmt.Errorf("writing I247/550 category: %w", err)
		}
		if err := buf.WriteByte(cv.Major); err != nil {
			return n + 1, fmt.Errorf("writing I247/550 major: %w", err)
		}
		if err := buf.WriteByte(cv.Minor); err != nil {
			return n + 2, fmt.Errorf("writing I247/550 minor: %w", err)
		}
		n += 3
	}

	return n, nil
}

// Validate checks the repetition count fits in one octet.
func (v *VersionNumberReport) Validate() error {
	if len(v.Versions) == 0 || len(v.Versions) > 255 {
		return fmt.Errorf("%w: I247/550 repetition count %d out of range", asterix.ErrInvalidRepetition, len(v.Versions))
	}
	return nil
}

// String lists every reported category/version pair.
func (v *VersionNumberReport) String() string {
	s := fmt.Sprintf("%d categories reported", len(v.Versions))
	for _, cv := range v.Versions {
		s += "; " + cv.String()
	}
	return s
}
