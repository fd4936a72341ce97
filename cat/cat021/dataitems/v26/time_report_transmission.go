// cat/cat021/dataitems/v26/time_report_transmission.go
package v26

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TimeOfReportTransmission implements I021/077
// Time at which the report was compiled and transmitted by the ground
// station, in the form of elapsed time since last midnight, expressed as
// UTC.
type TimeOfReportTransmission struct {
	Time float64 // Time in seconds since midnight
}

func (t *TimeOfReportTransmission) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 3, "time of report transmission")
	if err != nil {
		return 0, err
	}

	t.Time = float64(wire.Uint24BE(data)) / 128.0 // LSB = 1/128 seconds
	return 3, t.Validate()
}

func (t *TimeOfReportTransmission) Encode(buf *bytes.Buffer) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	counts := uint32(math.Round(t.Time * 128.0))
	wire.PutUint24BE(buf, counts)
	return 3, nil
}

func (t *TimeOfReportTransmission) Validate() error {
	if t.Time < 0 || t.Time >= 86400 {
		return fmt.Errorf("time out of valid range [0,86400): %f", t.Time)
	}
	return nil
}
