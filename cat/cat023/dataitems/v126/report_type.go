// cat/cat023/dataitems/v126/report_type.go
package v126

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// ReportType represents I023/000 - Report Type
// Fixed length: 1 byte
type ReportType struct {
	Type uint8 // 1=Ground Station Status, 2=Service Status, 3=Service Statistics
}

// NewReportType creates a new Report Type data item
func NewReportType() *ReportType {
	return &ReportType{}
}

// Decode decodes the Report Type from bytes
func (r *ReportType) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	r.Type = buf.Next(1)[0]
	return 1, nil
}

// Encode encodes the Report Type to bytes
func (r *ReportType) Encode(buf *bytes.Buffer) (int, error) {
	if err := buf.WriteByte(r.Type); err != nil {
		return 0, fmt.Errorf("writing report type: %w", err)
	}
	return 1, nil
}

// Validate validates the Report Type
func (r *ReportType) Validate() error {
	if r.Type < 1 || r.Type > 3 {
		return fmt.Errorf("%w: report type must be 1-3, got %d", asterix.ErrInvalidField, r.Type)
	}
	return nil
}

// String returns a string representation
func (r *ReportType) String() string {
	switch r.Type {
	case 1:
		return "Ground Station Status"
	case 2:
		return "Service Status"
	case 3:
		return "Service Statistics"
	default:
		return fmt.Sprintf("Unknown(%d)", r.Type)
	}
}
